// Package content is the static copy of the portfolio: prose, projects,
// skills, timeline and contact details. Nothing here changes at runtime.
package content

var (
	AboutMe = `I love building software that’s both useful and fun, and I’m always curious about how things work behind the scenes.
	Most of my projects start with a simple idea and turn into a chance to learn something new, whether it’s exploring a
	different language, experimenting with tools, or solving tricky problems.`

	AboutOffline = `When I’m not coding, you’ll usually find me training Muay Thai, shooting pool with friends,
	or chasing down a new challenge outside the screen.`

	HeroTagline = `I build fast, dependable tools in Go, from terminal apps to the servers behind them,
	and I care about the small details that make software pleasant to use.`

	mailClient = `A terminal-based email client built in Go with fuzzyfinder capabilities
	using the Charmbracelet TUI framework and go-imap.`

	musicPlayer = `A terminal-based music streaming application built in Go with an elegant TUI
	interface, leveraging yt-dlp and mpv for seamless YouTube Music playback directly from the command line.`

	gameRecommender = `A machine learning-powered web application that uses TF-IDF vectorization and cosine
	similarity to recommend games based on content analysis, featuring interactive data visualizations and
	real-time filtering by user reviews and ratings.`

	portfolioSite = `A modern, responsive portfolio website built with Go, Gin framework, and HTMX for
	dynamic interactions, with every bit of page state kept on the server and rendered as fragments.`

	linkShortener = `A privacy-conscious URL shortener with hashed visitor analytics, click counting and
	a small admin dashboard, backed by SQLite.`

	dotfiles = `A command-line bootstrapper that links dotfiles, installs packages and verifies a fresh
	machine against a declarative checklist.`

	FooterBlurb = `Building dependable software in Go, one small tool at a time.`
)
