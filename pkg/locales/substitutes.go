package locales

// substituteLanguages maps locale codes to display names for the
// languages the translation catalog ships but the display tables do
// not cover, or covers under a different name. Generated from the
// translation catalog; do not edit by hand.
var substituteLanguages = map[string]string{
	"fa":    "Persian",
	"sk":    "Slovak",
	"it":    "Italian",
	"oc":    "Occitan (post 1500)",
	"fi":    "Finnish",
	"sv":    "Swedish",
	"cs":    "Czech",
	"pl":    "Polish",
	"kab":   "Kabyle",
	"tr":    "Turkish",
	"hr":    "Croatian",
	"nn":    "Norwegian Nynorsk",
	"da":    "Danish",
	"de":    "German",
	"sr":    "српски",
	"pt_BR": "Brazilian Portuguese",
	"ja":    "Japanese",
	"bg":    "Bulgarian",
	"uk":    "Ukrainian",
	"ar":    "Arabic",
	"ca":    "Catalan",
	"nb":    "Norwegian Bokmal",
	"ru":    "Russian",
	"hu":    "magyar",
	"be":    "Belarusian",
	"es":    "Spanish",
	"pt":    "Portuguese",
	"zh_CN": "Chinese (Simplified)",
	"fr":    "Français",
	"et":    "Estonian",
	"nl":    "Dutch",
	"ro":    "Romanian",
	"id":    "Indonesian",
	"el":    "Greek",
}
