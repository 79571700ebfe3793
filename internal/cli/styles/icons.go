package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconGlobe     = "\uf0ac" // browser/web
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconGo        = "\ue627" // go gopher

	IconCheck  = "\uf00c" // check
	IconX      = "\uf00d" // x
	IconInfo   = "\uf05a" // info
	IconConfig = "\ue615" // config
	IconFolder = "\uf07b" // folder

	// Palette groups and commands
	IconTab       = "\uf0ce" // table
	IconWindow    = "\uf2d2" // window
	IconBookmark  = "\uf02e" // bookmark
	IconStar      = "\uf005" // star
	IconClock     = "\uf017" // clock
	IconRestore   = "\uf0e2" // rotate-left
	IconTerminal  = "\uf120" // terminal
	IconDownload  = "\uf019" // download
	IconPuzzle    = "\uf12e" // puzzle piece
	IconGear      = "\uf013" // gear
	IconReload    = "\uf021" // refresh
	IconIncognito = "\uf21b" // user-secret
)

var commandIcons = map[string]string{
	"tab":       IconTab,
	"window":    IconWindow,
	"history":   IconClock,
	"download":  IconDownload,
	"puzzle":    IconPuzzle,
	"bookmark":  IconBookmark,
	"star":      IconStar,
	"gear":      IconGear,
	"reload":    IconReload,
	"incognito": IconIncognito,
}

// CommandIcon maps a command icon name to its glyph.
func CommandIcon(name string) string {
	if icon, ok := commandIcons[name]; ok {
		return icon
	}
	return IconTerminal
}
