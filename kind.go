package mimekit

// Kind is a bitmask categorizing MIME types. A format can belong to more
// than one category (an MSI installer is both an archive and an
// application), so categories combine with bitwise OR.
type Kind uint32

const (
	// KindUnknown means no category has been assigned.
	KindUnknown Kind = 0

	// KindArchive covers archive and compression formats (ZIP, TAR, 7Z, RAR).
	KindArchive Kind = 1 << iota

	// KindVideo covers video containers (MP4, WebM, AVI, MKV).
	KindVideo

	// KindAudio covers audio formats (MP3, FLAC, WAV, AAC).
	KindAudio

	// KindImage covers image formats (PNG, JPEG, GIF, WebP).
	KindImage

	// KindDocument covers document formats (PDF, DOCX, ODT).
	KindDocument

	// KindText covers textual formats (plain text, HTML, XML, JSON).
	KindText

	// KindFont covers font formats (TTF, OTF, WOFF).
	KindFont

	// KindExecutable covers executables and binaries (ELF, PE, Mach-O, WASM).
	KindExecutable

	// KindApplication covers application packages (APK, JAR, SWF).
	KindApplication

	// KindModel covers 3D model formats (glTF, COLLADA).
	KindModel

	// KindDatabase covers database file formats (SQLite, MDB, Parquet).
	KindDatabase

	// KindSpreadsheet covers spreadsheet formats (XLSX, ODS).
	KindSpreadsheet

	// KindPresentation covers presentation formats (PPTX, ODP).
	KindPresentation
)

// Contains reports whether k includes all category bits of other.
func (k Kind) Contains(other Kind) bool {
	return k&other == other
}

// Union combines two kinds with bitwise OR.
func (k Kind) Union(other Kind) Kind {
	return k | other
}

// IsArchive reports whether the kind includes the archive category.
func (k Kind) IsArchive() bool { return k.Contains(KindArchive) }

// IsVideo reports whether the kind includes the video category.
func (k Kind) IsVideo() bool { return k.Contains(KindVideo) }

// IsAudio reports whether the kind includes the audio category.
func (k Kind) IsAudio() bool { return k.Contains(KindAudio) }

// IsImage reports whether the kind includes the image category.
func (k Kind) IsImage() bool { return k.Contains(KindImage) }

// IsDocument reports whether the kind includes the document category.
func (k Kind) IsDocument() bool { return k.Contains(KindDocument) }

// IsText reports whether the kind includes the text category.
func (k Kind) IsText() bool { return k.Contains(KindText) }

// IsFont reports whether the kind includes the font category.
func (k Kind) IsFont() bool { return k.Contains(KindFont) }

// IsExecutable reports whether the kind includes the executable category.
func (k Kind) IsExecutable() bool { return k.Contains(KindExecutable) }

// IsApplication reports whether the kind includes the application category.
func (k Kind) IsApplication() bool { return k.Contains(KindApplication) }

// IsModel reports whether the kind includes the 3D model category.
func (k Kind) IsModel() bool { return k.Contains(KindModel) }

// IsDatabase reports whether the kind includes the database category.
func (k Kind) IsDatabase() bool { return k.Contains(KindDatabase) }

// IsSpreadsheet reports whether the kind includes the spreadsheet category.
func (k Kind) IsSpreadsheet() bool { return k.Contains(KindSpreadsheet) }

// IsPresentation reports whether the kind includes the presentation category.
func (k Kind) IsPresentation() bool { return k.Contains(KindPresentation) }

// String returns a human-readable name for the kind. Combined kinds are
// rendered as the first matching category in priority order.
func (k Kind) String() string {
	switch {
	case k.IsImage():
		return "image"
	case k.IsVideo():
		return "video"
	case k.IsAudio():
		return "audio"
	case k.IsDocument():
		return "document"
	case k.IsSpreadsheet():
		return "spreadsheet"
	case k.IsPresentation():
		return "presentation"
	case k.IsArchive():
		return "archive"
	case k.IsText():
		return "text"
	case k.IsFont():
		return "font"
	case k.IsExecutable():
		return "executable"
	case k.IsApplication():
		return "application"
	case k.IsModel():
		return "model"
	case k.IsDatabase():
		return "database"
	default:
		return "unknown"
	}
}
