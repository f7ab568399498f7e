package termprobe

// emulationPrefix pairs a DA1/DA2 leading field with the DEC model it
// announces. Matching walks the table top to bottom and takes the first hit,
// so the order is part of the decode contract, not cosmetic.
type emulationPrefix struct {
	prefix string
	level  Emulation
}

var emulationPrefixes = []emulationPrefix{
	{"0;", EmulationVT100},
	{"1;0", EmulationVT101},
	{"1;2", EmulationVT100AVO},
	{"2;", EmulationVT240},
	{"4;6", EmulationVT132},
	{"6;", EmulationVT102},
	{"7;", EmulationVT131},
	{"18;", EmulationVT330},
	{"12;", EmulationVT125},
	{"19;", EmulationVT340},
	{"24;", EmulationVT320},
	{"32;", EmulationVT382},
	{"41;", EmulationVT420},
	{"61;", EmulationVT510},
	{"62;", EmulationVT220},
	{"63;", EmulationVT320},
	{"64;", EmulationVT520},
	{"65;", EmulationVT525},
	// rxvt and mrxvt store 'U' or 'R' in the first DA2 field instead of a
	// DEC model id.
	{"85;", EmulationUnknown},
	{"82;", EmulationUnknown},
}

// featureCode pairs a DA1 capability code with its feature bit.
type featureCode struct {
	code    uint
	feature Feature
}

var featureCodes = []featureCode{
	{1, Feature132Cols},
	{2, FeaturePrinter},
	{3, FeatureRegis},
	{4, FeatureSixel},
	{6, FeatureSelErase},
	{7, FeatureDRCS},
	{8, FeatureUDK},
	{9, FeatureNRCS},
	{12, FeatureSCS},
	{15, FeatureTechCharset},
	{16, FeatureLocatorPort},
	{17, FeatureStateInterrogation},
	{18, FeatureWindowing},
	{19, FeatureSessions},
	{21, FeatureHorScroll},
	{22, FeatureAnsiColors},
	{23, FeatureGreek},
	{24, FeatureTurkish},
	{28, FeatureRectEditContour},
	{29, FeatureTextLocator},
	{42, FeatureLatin2},
	{44, FeaturePCTerm},
	{45, FeatureSoftKeyMap},
	{46, FeatureASCIIEmul},
	{314, FeatureCaptureContour},
}

// featureForCode looks up the feature bit for a DA1 code.
func featureForCode(code uint) (Feature, bool) {
	for _, fc := range featureCodes {
		if fc.code == code {
			return fc.feature, true
		}
	}
	return 0, false
}

// Unit ids reported in DA3 replies by the emulators that implement the
// query. The hex decodes to a short ASCII tag.
const (
	unitIDVTE  = "7E565445" // "~VTE"
	unitIDFoot = "464f4f54" // "FOOT"
)

// tnKitty is kitty's hex-encoded XTGETTCAP terminal name, "xterm-kitty".
const tnKitty = "787465726d2d6b69747479"
