package landing

import (
	"time"

	g "maragu.dev/gomponents"

	"github.com/windmill-labs/windmill-homepage/internal/website"
	"github.com/windmill-labs/windmill-homepage/internal/website/components"
)

// DefaultSlideshow returns the editor screenshots slideshow.
func DefaultSlideshow() components.Slideshow {
	return components.Slideshow{
		Interval: 4 * time.Second,
		Slides: []website.Image{
			{Src: "/static/img/editor.png", Alt: "Web editor"},
			{Src: "/static/img/editor_lsp.png", Alt: "Autocompletion and diagnostics in the editor"},
			{Src: "/static/img/editor_run.png", Alt: "Running a script from the editor"},
		},
	}
}

// DefaultConnectors is the logo row of the integrations section.
func DefaultConnectors() components.ConnectorRow {
	return components.ConnectorRow{
		Logos: []website.Image{
			{Src: "/static/third_party_logos/postgres.svg", Alt: "PostgreSQL"},
			{Src: "/static/third_party_logos/mysql.svg", Alt: "MySQL"},
			{Src: "/static/third_party_logos/mongo.svg", Alt: "MongoDB"},
			{Src: "/static/third_party_logos/slack.svg", Alt: "Slack"},
		},
		Caption: "... anything with a python client",
	}
}

// DefaultSections returns the hand-laid sections below the feature grid.
// The last one hosts the mounted slideshow.
func DefaultSections(slideshow components.Widget) []components.MarketingSection {
	var editor g.Node
	if slideshow != nil {
		editor = slideshow.Mount(SlideshowID)
	}

	return []components.MarketingSection{
		{
			ID:      "autogenerated-ui",
			Heading: "Build complex workflows in minutes without accumulating UI tech debt",
			Body: `Apps and their UI are automatically generated and continuously updated from your script parameters.

The arguments of your main function are parsed with their names, types and default parameters to build an App UI automatically. All python types have dedicated form fields, even complex ones.

The automatically generated UI can then be, if desired, customised and specialized with information that is impossible to infer from a script. **The generated UI makes it very simple to expose your app to non-technical users while not requiring any effort from the script author.**`,
			Images: []website.Image{{Src: "/static/img/parser.png", Alt: "UI parser"}},
			Layout: components.SectionLayout{Columns: 3, TextSpan: 1, MediaSpan: 2},
		},
		{
			ID:      "production-grade",
			Heading: "Make your internal operations production grade with ease",
			Body: `By relying on Windmill, you ensure that your team never has to worry about deploying and managing the infra of your internal operations.

Secure your sensitive information and passwords: your **secrets** are tightly permissioned.

Keep track of operations with **audit logs** enabling you to root cause quickly any mishaps.

Define visibility, edit rights and executability for your scripts, resources, schedules, etc using **groups' and users' granular permissions**.

Upskill your less technical members interested in authoring scripts themselves by having them learn Python in an accessible and integrated environment.`,
			Images: []website.Image{{Src: "/static/img/run_script.png", Alt: "Run UI", Class: "shadowed"}},
			Layout: components.SectionLayout{Columns: 2, MediaFirst: true},
		},
		{
			ID:      "integrations",
			Heading: "Replace all your sparely used niche tools: we cover every use-case and to any API",
			Body: `Windmill is extremely generic, it uses simple but powerful abstractions. If you can script it, then windmill can do it.

Trigger scripts from **slack commands**, **autogenerated UI**, **Webhooks** and **Schedules**.

Many tools do only one thing, and are focused on one specific problem. You need to setup many different niche tools that only few will end up using.

By reducing the number of tools you use, you increase standardization and make it easier for your whole team to master the one tool to rule them all.

Unlike other automation tools, we do not reinvent the wheel with proprietary connectors and UI, connect to any API using its standard python client available in PyPI. **Any python library becomes a connector.**`,
			Extra: DefaultConnectors().Node(),
			Images: []website.Image{
				{Src: "/static/img/schedule.png", Alt: "Schedule", Class: "shadowed"},
				{Src: "/static/img/slack_command.png", Alt: "Slack command", Class: "shadowed"},
			},
			Layout: components.SectionLayout{Columns: 3, TextSpan: 2, MediaSpan: 1},
		},
		{
			ID:      "developers",
			Heading: "Coding is seldom the bottleneck, it is everything else",
			Body: `Not just for developers, the generated Apps are meant to be used by all, and the included Webeditor makes it easy and gratifying to learn the basics of python scripts.

As a dev, you will feel right at home with Windmill. Indeed, most of the concepts used throughout windmill are the ones you are already familiar as a developer:

- scripts are versioned with their hash under a simplified git lineage
- deploy from github as part of your CI/CD
- groups (similar to unix groups)
- jsonschemas for payload and resources validation/definition
- permissions are read or write to users or groups
- every item is uniquely identified by a clear hierarchic path
- schedules are defined in a cron format

Our webeditor is based on Visual Studio code. It uses monaco. In addition, we provide smart assistants such as black, autocompletion and flycheck (with pyright) through our own LSP servers.`,
			Media:  editor,
			Layout: components.SectionLayout{Columns: 5, TextSpan: 2, MediaSpan: 3, MediaFirst: true},
		},
	}
}
