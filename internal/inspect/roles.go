package inspect

import "strings"

// roleToSwing maps canonical AccessibleRole names to Swing class names, the
// vocabulary locators use for type= filters.
var roleToSwing = map[string]string{
	"frame":          "JFrame",
	"root pane":      "JRootPane",
	"panel":          "JPanel",
	"label":          "JLabel",
	"push button":    "JButton",
	"toggle button":  "JToggleButton",
	"check box":      "JCheckBox",
	"radio button":   "JRadioButton",
	"text":           "JTextField",
	"password text":  "JPasswordField",
	"text area":      "JTextArea",
	"combo box":      "JComboBox",
	"list":           "JList",
	"table":          "JTable",
	"tree":           "JTree",
	"tab page":       "JTabbedPane",
	"scroll pane":    "JScrollPane",
	"tool bar":       "JToolBar",
	"menu bar":       "JMenuBar",
	"menu":           "JMenu",
	"menu item":      "JMenuItem",
	"popup menu":     "JPopupMenu",
	"separator":      "JSeparator",
	"slider":         "JSlider",
	"spinner":        "JSpinner",
	"desktop pane":   "JDesktopPane",
	"internal frame": "JInternalFrame",
	"split pane":     "JSplitPane",
	"progress bar":   "JProgressBar",
	"editor pane":    "JEditorPane",
	"formatted text": "JFormattedTextField",
	"color chooser":  "JColorChooser",
	"file chooser":   "JFileChooser",
	"option pane":    "JOptionPane",
	"layered pane":   "JLayeredPane",
	"glass pane":     "GlassPane",
	"viewport":       "JViewport",
}

// RoleToSwingType returns the Swing class name for a canonical role, or ""
// when the role has no Swing equivalent.
func RoleToSwingType(role string) string {
	return roleToSwing[strings.ToLower(strings.TrimSpace(role))]
}
