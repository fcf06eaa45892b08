package personality

// line is one canned phrase. It becomes eligible at its sass band and
// stays eligible at every level above it.
type line struct {
	band int
	text string
}

var lines = map[Mood][]line{
	Greeting: {
		{0, "Hello, {{.User}}."},
		{1, "Alright {{.User}}, let's get this over with."},
		{4, "Wubba lubba dub dub, {{.User}}!"},
		{4, "Look who finally showed up."},
		{8, "Oh great, {{.User}} needs a menu again. *burp* Thrilling."},
		{8, "What is it this time, {{.User}}? The multiverse was quieter without you."},
	},
	Confirm: {
		{0, "Done."},
		{1, "Done. That's it, {{.User}}."},
		{4, "Boom. Handled. You're welcome."},
		{8, "There. Even a Jerry could have picked that, {{.User}}."},
		{8, "*burp* Done. Try not to break it this time."},
	},
	Cancel: {
		{0, "Cancelled."},
		{1, "Fine, backing out."},
		{4, "Aborting. Commitment issues, {{.User}}?"},
		{8, "Yeah, walk away. Classic {{.User}}."},
	},
	Error: {
		{0, "Something went wrong."},
		{1, "That didn't work."},
		{4, "Well, that blew up. Not my fault."},
		{8, "Great job, {{.User}}, you broke it. *burp*"},
		{8, "Somewhere in infinite universes that worked. Not in this one."},
	},
	Status: {
		{0, "Systems nominal."},
		{1, "Everything's running, more or less."},
		{4, "The numbers look fine, {{.User}}. Probably."},
		{8, "It's a terminal, {{.User}}, not a portal gun. It's fine."},
	},
}

// neutral is what comes out when catchphrases are turned off.
var neutral = map[Mood]string{
	Greeting: "Hello.",
	Confirm:  "Done.",
	Cancel:   "Cancelled.",
	Error:    "Something went wrong.",
	Status:   "Systems nominal.",
}
