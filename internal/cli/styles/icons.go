package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconConfig  = "\ue615" // config
	IconWindow  = "\uf2d2" // window
	IconFloat   = "\uf24d" // clone/stack
	IconTab     = "\uf0ce" // table
	IconColumns = "\uf0db" // columns
	IconArrow   = "\uf061" // arrow right
)

// Tree connectors.
const (
	treeBranch = "├─ "
	treeLast   = "└─ "
	treePipe   = "│  "
	treeSpace  = "   "
)
