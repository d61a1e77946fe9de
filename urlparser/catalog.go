package urlparser

// Setting is one default remote-desktop client setting. Value holds the type
// tag and default exactly as written to the profile after "<Name>:".
type Setting struct {
	Name  string
	Value string
}

// Line returns the profile line for the setting.
func (s Setting) Line() string {
	return s.Name + ":" + s.Value
}

// Setting names with special handling.
const (
	UsernameKey    = "username"
	FullAddressKey = "full address"
)

// Catalog is the ordered list of default remote-desktop client settings
// merged with the settings supplied in a URL. A few entries carry no leading
// colon before their type tag; the consuming client reads the output
// verbatim, so they are kept as they are.
var Catalog = []Setting{
	{FullAddressKey, ":s:%Host%"},
	{UsernameKey, ":s:%user%"},
	{"screen mode id", ":i:1"},
	{"use multimon", ":i:0"},
	{"desktopwidth", ":i:1024"},
	{"desktopheight", ":i:768"},
	{"compression", ":i:1"},
	{"keyboardhook", ":i:2"},
	{"audiocapturemode", ":i:0"},
	{"videoplaybackmode", ":i:1"},
	{"connection type", ":i:7"},
	{"networkautodetect", ":i:1"},
	{"bandwidthautodetect", ":i:1"},
	{"displayconnectionbar", ":i:1"},
	{"enableworkspacereconnect", ":i:0"},
	{"disable wallpaper", ":i:1"},
	{"allow font smoothing", ":i:1"},
	{"allow desktop composition", ":i:1"},
	{"disable full window drag", ":i:1"},
	{"disable menu anims", ":i:1"},
	{"disable themes", ":i:0"},
	{"disable cursor setting", ":i:0"},
	{"bitmapcachepersistenable", ":i:1"},
	{"audiomode", ":i:0"},
	{"redirectprinters", ":i:1"},
	{"redirectcomports", ":i:0"},
	{"redirectsmartcards", ":i:1"},
	{"redirectclipboard", ":i:1"},
	{"redirectposdevices", ":i:0"},
	{"autoreconnection enabled", ":i:1"},
	{"authentication level", ":i:2"},
	{"negotiate security layer", ":i:1"},
	{"remoteapplicationmode", ":i:0"},
	{"alternate shell", ":s:"},
	{"shell working directory", ":s:"},
	{"gatewayhostname", ":s:"},
	{"gatewayusagemethod", ":i:4"},
	{"gatewaycredentialssource", ":i:4"},
	{"gatewayprofileusagemethod", ":i:0"},
	{"promptcredentialonce", ":i:0"},
	{"alternate full address", "s:"},
	{"domain", "s:"},
	{"enablecredsspsupport", ":i:0"},
	{"disableconnectionsharing", ":i:0"},
	{"encode redirected video capture", ":i:1"},
	{"redirected video capture encoding quality", ":i:0"},
	{"camerastoredirect", "s:"},
	{"devicestoredirect", ":s:"},
	{"drivestoredirect", ":s:"},
	{"usbdevicestoredirect", ":s:"},
	{"selectedmonitors", ":s:"},
	{"maximizetocurrentdisplays", ":i:0"},
	{"singlemoninwindowedmode", ":i:0"},
	{"smart sizing", ":i:1"},
	{"dynamic resolution", ":i:1"},
	{"desktop size id", ":i:1"},
	{"desktopscalefactor", ":i:100"},
	{"remoteapplicationexpandcmdline", ":i:1"},
	{"remoteapplicationexpandworkingdir", ":i:1"},
	{"remoteapplicationicon", ":s:"},
	{"remoteapplicationname", "s:"},
	{"remoteapplicationprogram", "s:"},
}
