package termprobe

// Feature is one optional terminal capability, either decoded from a DA1
// feature code or force-added for families documented to support it.
type Feature uint32

const (
	// Feature132Cols is 132-column mode.
	Feature132Cols Feature = 1 << iota
	// FeaturePrinter is the printer port.
	FeaturePrinter
	// FeatureRegis is ReGIS graphics.
	FeatureRegis
	// FeatureSixel is sixel graphics.
	FeatureSixel
	// FeatureSelErase is selective erase.
	FeatureSelErase
	// FeatureDRCS is user-defined (dynamically redefinable) character sets.
	FeatureDRCS
	// FeatureUDK is user-defined keys.
	FeatureUDK
	// FeatureNRCS is national replacement character sets.
	FeatureNRCS
	// FeatureSCS is Serbo-Croatian character sets.
	FeatureSCS
	// FeatureTechCharset is the DEC technical character set.
	FeatureTechCharset
	// FeatureLocatorPort is the locator device port.
	FeatureLocatorPort
	// FeatureStateInterrogation is terminal state interrogation.
	FeatureStateInterrogation
	// FeatureWindowing is windowing capability.
	FeatureWindowing
	// FeatureSessions is multiple sessions.
	FeatureSessions
	// FeatureHorScroll is horizontal scrolling.
	FeatureHorScroll
	// FeatureAnsiColors is ANSI color support.
	FeatureAnsiColors
	// FeatureGreek is the Greek character set extension.
	FeatureGreek
	// FeatureTurkish is the Turkish character set extension.
	FeatureTurkish
	// FeatureTextLocator is the text locator.
	FeatureTextLocator
	// FeatureLatin2 is the ISO Latin-2 character set.
	FeatureLatin2
	// FeaturePCTerm is PC terminal mode.
	FeaturePCTerm
	// FeatureSoftKeyMap is soft key map support.
	FeatureSoftKeyMap
	// FeatureASCIIEmul is ASCII terminal emulation.
	FeatureASCIIEmul
	// FeatureCaptureContour is contour's buffer capture extension.
	FeatureCaptureContour
	// FeatureRectEditContour is contour's rectangular edit extension.
	FeatureRectEditContour
	// FeatureDesktopNotification is desktop notifications via OSC 777.
	FeatureDesktopNotification
	// FeatureDECSTBM is the scroll-region control (CSI r).
	FeatureDECSTBM
	// FeatureVertLineMarkers is vertical line markers.
	FeatureVertLineMarkers
)

// allFeatures lists every feature in declaration order; name listings follow
// this order so output is stable.
var allFeatures = []Feature{
	Feature132Cols,
	FeaturePrinter,
	FeatureRegis,
	FeatureSixel,
	FeatureSelErase,
	FeatureDRCS,
	FeatureUDK,
	FeatureNRCS,
	FeatureSCS,
	FeatureTechCharset,
	FeatureLocatorPort,
	FeatureStateInterrogation,
	FeatureWindowing,
	FeatureSessions,
	FeatureHorScroll,
	FeatureAnsiColors,
	FeatureGreek,
	FeatureTurkish,
	FeatureTextLocator,
	FeatureLatin2,
	FeaturePCTerm,
	FeatureSoftKeyMap,
	FeatureASCIIEmul,
	FeatureCaptureContour,
	FeatureRectEditContour,
	FeatureDesktopNotification,
	FeatureDECSTBM,
	FeatureVertLineMarkers,
}

// String returns the feature's short name.
func (f Feature) String() string {
	switch f {
	case Feature132Cols:
		return "132cols"
	case FeaturePrinter:
		return "printer"
	case FeatureRegis:
		return "regis"
	case FeatureSixel:
		return "sixel"
	case FeatureSelErase:
		return "selerase"
	case FeatureDRCS:
		return "drcs"
	case FeatureUDK:
		return "udk"
	case FeatureNRCS:
		return "nrcs"
	case FeatureSCS:
		return "scs"
	case FeatureTechCharset:
		return "techcharset"
	case FeatureLocatorPort:
		return "locatorport"
	case FeatureStateInterrogation:
		return "stateinterrogation"
	case FeatureWindowing:
		return "windowing"
	case FeatureSessions:
		return "sessions"
	case FeatureHorScroll:
		return "horscroll"
	case FeatureAnsiColors:
		return "ansicolors"
	case FeatureGreek:
		return "greek"
	case FeatureTurkish:
		return "turkish"
	case FeatureTextLocator:
		return "textlocator"
	case FeatureLatin2:
		return "latin2"
	case FeaturePCTerm:
		return "pcterm"
	case FeatureSoftKeyMap:
		return "softkeymap"
	case FeatureASCIIEmul:
		return "asciiemul"
	case FeatureCaptureContour:
		return "capturecontour"
	case FeatureRectEditContour:
		return "recteditcontour"
	case FeatureDesktopNotification:
		return "desktopnotification"
	case FeatureDECSTBM:
		return "decstbm"
	case FeatureVertLineMarkers:
		return "vertlinemarkers"
	default:
		return "unknown"
	}
}

// FeatureSet is a bitmask of Features.
type FeatureSet uint32

// Has reports whether every bit of f is set.
func (s FeatureSet) Has(f Feature) bool {
	return s&FeatureSet(f) == FeatureSet(f)
}

// With returns s with f added.
func (s FeatureSet) With(f Feature) FeatureSet {
	return s | FeatureSet(f)
}

// Names returns the names of all set features in declaration order.
func (s FeatureSet) Names() []string {
	var names []string
	for _, f := range allFeatures {
		if s.Has(f) {
			names = append(names, f.String())
		}
	}
	return names
}
