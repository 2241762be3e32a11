package mimekit

import "sync"

// The detection tree. The root matches everything and acts as the fallback
// for unrecognized data; its children are ordered by priority, roughly
// "distinctive magic numbers first, expensive text sniffing last". The
// ordering is load-bearing: detection stops at the first matching sibling,
// so a format whose matcher is a superset of a later sibling's would shadow
// it. Keep new formats above the text fallback and below anything they
// could be confused with.
var root = newMIMEType("application/octet-stream", "", func([]byte) bool { return true },
	xpm, sevenZ, zipType, pdf, fdf, ole, textUTF8BOM, textUTF16BE, textUTF16LE,
	ps, psd, pbm, pgm, ppm, pam, p7s, ogg, png, jpg, jxl, jp2, jpx, gif,
	webp, exe, elf, ar, tarType, xar, bz2, fits, tiff, bmp, ico, mp3, flac,
	midi, ape, musePack, amr, wav, aiff, au, mpegVideo, quickTime, mqv,
	mp4, webM, avi, flv, mkv, asf, aac, voc, m3u, rmvb, gzip, class, swf,
	crx, ttf, woff, woff2, otf, ttc, eot, wasm, dcm, rar, djvu, mobi, lit,
	bpg, sqlite3, dwg, dxf, nes, lnk, macho, qcp, icns, hdr, mdb, accdb,
	zstd, cab, chm, rpm, xz, lzip, lz4, torrent, cpio, tzif, xcf, gimpPat,
	gimpGbr, glb, installShieldCab, jxr, parquet, dds, pcap, pcapng,
	// Generic text is the slowest check and the loosest match, keep it last.
	text,
)

var (
	treeOnce sync.Once
)

// ensureInit builds the tree exactly once per process. Concurrent first
// callers race safely on the sync.Once; every caller observes the fully
// wired tree.
func ensureInit() {
	treeOnce.Do(func() {
		assignParents(root)
		root.register()
	})
}

// assignParents wires the parent back-references from containment: a node's
// parent is the node whose children list holds it.
func assignParents(m *MIMEType) {
	for _, child := range m.children {
		child.parent = m
		assignParents(child)
	}
}

// Text formats. Generic UTF-8 text carries the textual sub-formats as
// children; encoding variants with BOMs sit directly under the root so a
// BOM is recognized before the binary signatures run.
var (
	// svg sits before xml: an SVG document opens with an XML prologue and
	// would otherwise stop at the generic xml node.
	text = newMIMEType("text/plain; charset=utf-8", ".txt", matchText,
		html, svg, xml, rtf, php, js, python, perl, ruby, lua, shellScript,
		tcl, jsonType, csvType, tsv, srt, vtt, vCard, iCalendar, warc,
	).withAliases("text/plain").
		withExtensionAliases(".html", ".htm", ".svg", ".xml", ".rss", ".atom",
			".php", ".js", ".lua", ".pl", ".py", ".json", ".geojson", ".ndjson",
			".rtf", ".tcl", ".csv", ".tsv", ".vcf", ".ics", ".srt", ".vtt", ".warc").
		withKind(KindText)

	textUTF8BOM = newMIMEType("text/plain; charset=utf-8", ".txt", matchUTF8BOM).withKind(KindText)
	textUTF16BE = newMIMEType("text/plain; charset=utf-16be", ".txt", matchUTF16BE).withKind(KindText)
	textUTF16LE = newMIMEType("text/plain; charset=utf-16le", ".txt", matchUTF16LE).withKind(KindText)

	html = newMIMEType("text/html; charset=utf-8", ".html", matchHTML).
		withExtensionAliases(".htm").withKind(KindText)

	xml = newMIMEType("text/xml; charset=utf-8", ".xml", matchXML,
		rss, atom, kml, gpx, xhtml,
	).withAliases("application/xml").withKind(KindText)

	rtf = newMIMEType("text/rtf", ".rtf", matchRTF).
		withAliases("application/rtf").withKind(KindDocument)

	php = newMIMEType("text/x-php", ".php", matchPHP)
	js  = newMIMEType("text/javascript", ".js", matchJS).
		withAliases("application/javascript")
	python = newMIMEType("text/x-python", ".py", matchPython).
		withAliases("text/x-script.python", "application/x-python")
	perl = newMIMEType("text/x-perl", ".pl", matchPerl)
	ruby = newMIMEType("text/x-ruby", ".rb", matchRuby).
		withAliases("application/x-ruby")
	lua         = newMIMEType("text/x-lua", ".lua", matchLua)
	shellScript = newMIMEType("text/x-shellscript", ".sh", matchShell).
			withAliases("text/x-sh", "application/x-shellscript", "application/x-sh")
	tcl = newMIMEType("text/x-tcl", ".tcl", matchTcl).
		withAliases("application/x-tcl")

	jsonType = newMIMEType("application/json", ".json", matchJSON,
		geoJSON, ndJSON, har, glTF,
	)
	geoJSON = newMIMEType("application/geo+json", ".geojson", matchGeoJSON)
	ndJSON  = newMIMEType("application/x-ndjson", ".ndjson", matchNDJSON)
	har     = newMIMEType("application/json", ".har", matchHAR).withKind(KindText)
	glTF    = newMIMEType("model/gltf+json", ".gltf", matchGLTF).withKind(KindModel)

	// csvType, not csv: the bare name would collide with the encoding/csv
	// import elsewhere in the package. Same for zipType and tarType below.
	csvType = newMIMEType("text/csv", ".csv", matchCSV)
	tsv     = newMIMEType("text/tab-separated-values", ".tsv", matchTSV)
	srt = newMIMEType("application/x-subrip", ".srt", matchSRT).
		withAliases("application/x-srt", "text/x-srt").withKind(KindDocument)
	vtt       = newMIMEType("text/vtt", ".vtt", matchVTT)
	vCard     = newMIMEType("text/vcard", ".vcf", matchVCard)
	iCalendar = newMIMEType("text/calendar", ".ics", matchICalendar)

	svg = newMIMEType("image/svg+xml", ".svg", matchSVG).withKind(KindImage)

	rss = newMIMEType("application/rss+xml", ".rss", matchRSS).
		withAliases("text/rss").withKind(KindText)
	atom  = newMIMEType("application/atom+xml", ".atom", matchAtom).withKind(KindText)
	kml   = newMIMEType("application/vnd.google-earth.kml+xml", ".kml", matchKML).withKind(KindText)
	gpx   = newMIMEType("application/gpx+xml", ".gpx", matchGPX).withKind(KindText)
	xhtml = newMIMEType("application/xhtml+xml", ".html", matchXHTML).withKind(KindText)

	warc = newMIMEType("application/warc", ".warc", matchWARC).withKind(KindArchive)
)

// Document formats.
var (
	pdf = newMIMEType("application/pdf", ".pdf", matchPDF).
		withAliases("application/x-pdf").withKind(KindDocument)
	fdf = newMIMEType("application/vnd.fdf", ".fdf", matchFDF).withKind(KindDocument)
	ps  = newMIMEType("application/postscript", ".ps", matchPS).withKind(KindDocument)

	// OLE compound storage is the container for the legacy Office family.
	// The CLSID probes below distinguish the members; generic OLE is the
	// answer when none of them hits.
	ole = newMIMEType("application/x-ole-storage", "", matchOLE,
		msi, msg, xls, pub, ppt, doc,
	).withExtensionAliases(".xls", ".pub", ".ppt", ".doc").withKind(KindDocument)

	doc = newMIMEType("application/msword", ".doc", matchDoc).withKind(KindDocument)
	xls = newMIMEType("application/vnd.ms-excel", ".xls", matchXLS).withKind(KindSpreadsheet)
	ppt = newMIMEType("application/vnd.ms-powerpoint", ".ppt", matchPPT).withKind(KindPresentation)
	pub = newMIMEType("application/vnd.ms-publisher", ".pub", matchPub).withKind(KindDocument)
	msg = newMIMEType("application/vnd.ms-outlook", ".msg", matchMsg).withKind(KindDocument)
	msi = newMIMEType("application/x-ms-installer", ".msi", matchMSI).
		withKind(KindArchive.Union(KindApplication))

	chm = newMIMEType("application/vnd.ms-htmlhelp", ".chm", matchCHM).withKind(KindDocument)

	mobi = newMIMEType("application/x-mobipocket-ebook", ".mobi", matchMobi).withKind(KindDocument)
	lit  = newMIMEType("application/x-ms-reader", ".lit", matchLit).withKind(KindDocument)
	djvu = newMIMEType("image/vnd.djvu", ".djvu", matchDjVu).withKind(KindImage)
)

// Archive and compression formats.
var (
	sevenZ = newMIMEType("application/x-7z-compressed", ".7z", matchSevenZ).withKind(KindArchive)

	zipType = newMIMEType("application/zip", ".zip", matchZip,
		docx, xlsx, pptx, epub, jar, apk, odt, ods, odp, kmz,
	).withAliases("application/x-zip", "application/x-zip-compressed").
		withExtensionAliases(".docx", ".xlsx", ".pptx", ".epub", ".jar", ".odt", ".ods", ".odp", ".kmz").
		withKind(KindArchive)

	docx = newMIMEType("application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		".docx", matchDocx).withKind(KindDocument)
	xlsx = newMIMEType("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		".xlsx", matchXlsx).withKind(KindSpreadsheet)
	pptx = newMIMEType("application/vnd.openxmlformats-officedocument.presentationml.presentation",
		".pptx", matchPptx).withKind(KindPresentation)
	epub = newMIMEType("application/epub+zip", ".epub", matchEpub).withKind(KindDocument)
	jar  = newMIMEType("application/java-archive", ".jar", matchJar).
		withAliases("application/jar", "application/jar-archive", "application/x-java-archive").
		withKind(KindApplication)
	apk = newMIMEType("application/vnd.android.package-archive", ".apk", matchAPK).
		withKind(KindApplication)

	odt = newMIMEType("application/vnd.oasis.opendocument.text", ".odt", matchODT).
		withAliases("application/x-vnd.oasis.opendocument.text").withKind(KindDocument)
	ods = newMIMEType("application/vnd.oasis.opendocument.spreadsheet", ".ods", matchODS).
		withAliases("application/x-vnd.oasis.opendocument.spreadsheet").withKind(KindSpreadsheet)
	odp = newMIMEType("application/vnd.oasis.opendocument.presentation", ".odp", matchODP).
		withAliases("application/x-vnd.oasis.opendocument.presentation").withKind(KindPresentation)
	kmz = newMIMEType("application/vnd.google-earth.kmz", ".kmz", matchKMZ).withKind(KindDocument)

	rar = newMIMEType("application/x-rar-compressed", ".rar", matchRar).
		withAliases("application/x-rar").withKind(KindArchive)
	gzip = newMIMEType("application/gzip", ".gz", matchGzip).
		withAliases("application/x-gzip", "application/x-gunzip", "application/gzipped",
			"application/gzip-compressed", "application/x-gzip-compressed", "gzip/document").
		withExtensionAliases(".tgz", ".taz").withKind(KindArchive)
	tarType = newMIMEType("application/x-tar", ".tar", matchTar).withKind(KindArchive)
	bz2     = newMIMEType("application/x-bzip2", ".bz2", matchBz2).withKind(KindArchive)
	xz      = newMIMEType("application/x-xz", ".xz", matchXz).withKind(KindArchive)
	zstd    = newMIMEType("application/zstd", ".zst", matchZstd).withKind(KindArchive)
	lzip    = newMIMEType("application/lzip", ".lz", matchLzip).
		withAliases("application/x-lzip").withKind(KindArchive)
	lz4 = newMIMEType("application/x-lz4", ".lz4", matchLz4).withKind(KindArchive)
	cab              = newMIMEType("application/vnd.ms-cab-compressed", ".cab", matchCab).withKind(KindArchive)
	installShieldCab = newMIMEType("application/x-installshield", ".cab", matchInstallShieldCab).
				withKind(KindArchive)
	cpio = newMIMEType("application/x-cpio", ".cpio", matchCpio).withKind(KindArchive)

	ar = newMIMEType("application/x-archive", ".a", matchAr, deb).
		withAliases("application/x-unix-archive").
		withExtensionAliases(".deb").withKind(KindArchive)
	deb = newMIMEType("application/vnd.debian.binary-package", ".deb", matchDeb).
		withKind(KindArchive)

	rpm     = newMIMEType("application/x-rpm", ".rpm", matchRPM).withKind(KindArchive)
	torrent = newMIMEType("application/x-bittorrent", ".torrent", matchTorrent)
	xar     = newMIMEType("application/x-xar", ".xar", matchXar).withKind(KindArchive)
	fits    = newMIMEType("application/fits", ".fits", matchFITS).
		withAliases("image/fits").withKind(KindImage)
)

// Image formats.
var (
	png  = newMIMEType("image/png", ".png", matchPNG, apng).withKind(KindImage)
	apng = newMIMEType("image/vnd.mozilla.apng", ".apng", matchAPNG).withKind(KindImage)

	jpg = newMIMEType("image/jpeg", ".jpg", matchJPEG).
		withExtensionAliases(".jpeg", ".jpe", ".jif", ".jfif", ".jfi").withKind(KindImage)
	jp2 = newMIMEType("image/jp2", ".jp2", matchJP2).withKind(KindImage)
	jpx = newMIMEType("image/jpx", ".jpx", matchJPX).withKind(KindImage)
	jxl = newMIMEType("image/jxl", ".jxl", matchJXL).withKind(KindImage)
	jxr = newMIMEType("image/jxr", ".jxr", matchJXR).
		withAliases("image/vnd.ms-photo").withKind(KindImage)

	gif  = newMIMEType("image/gif", ".gif", matchGIF).withKind(KindImage)
	webp = newMIMEType("image/webp", ".webp", matchWebP).withKind(KindImage)
	tiff = newMIMEType("image/tiff", ".tiff", matchTIFF).
		withExtensionAliases(".tif").withKind(KindImage)
	bmp = newMIMEType("image/bmp", ".bmp", matchBMP).
		withAliases("image/x-bmp", "image/x-ms-bmp").
		withExtensionAliases(".dib").withKind(KindImage)
	ico  = newMIMEType("image/x-icon", ".ico", matchICO).withKind(KindImage)
	icns = newMIMEType("image/x-icns", ".icns", matchICNS).withKind(KindImage)
	psd  = newMIMEType("image/vnd.adobe.photoshop", ".psd", matchPSD).
		withAliases("image/x-psd", "application/photoshop").withKind(KindImage)

	pbm = newMIMEType("image/x-portable-bitmap", ".pbm", matchPBM).withKind(KindImage)
	pgm = newMIMEType("image/x-portable-graymap", ".pgm", matchPGM).withKind(KindImage)
	ppm = newMIMEType("image/x-portable-pixmap", ".ppm", matchPPM).withKind(KindImage)
	pam = newMIMEType("image/x-portable-arbitrarymap", ".pam", matchPAM).withKind(KindImage)

	heic    = newMIMEType("image/heic", ".heic", matchHEIC).withKind(KindImage)
	heicSeq = newMIMEType("image/heic-sequence", ".heic", matchHEICSequence).withKind(KindImage)
	heif    = newMIMEType("image/heif", ".heif", matchHEIF).withKind(KindImage)
	heifSeq = newMIMEType("image/heif-sequence", ".heif", matchHEIFSequence).withKind(KindImage)
	avif    = newMIMEType("image/avif", ".avif", matchAVIF).withKind(KindImage)

	bpg     = newMIMEType("image/bpg", ".bpg", matchBPG).withKind(KindImage)
	dds     = newMIMEType("image/vnd.ms-dds", ".dds", matchDDS).withKind(KindImage)
	xcf     = newMIMEType("image/x-xcf", ".xcf", matchXCF).withKind(KindImage)
	gimpPat = newMIMEType("image/x-gimp-pat", ".pat", matchGimpPat).withKind(KindImage)
	gimpGbr = newMIMEType("image/x-gimp-gbr", ".gbr", matchGimpGbr).withKind(KindImage)
	hdr     = newMIMEType("image/vnd.radiance", ".hdr", matchHDR).withKind(KindImage)
	xpm     = newMIMEType("image/x-xpixmap", ".xpm", matchXPM).withKind(KindImage)
	dwg     = newMIMEType("image/vnd.dwg", ".dwg", matchDWG).
		withAliases("image/x-dwg", "application/acad", "application/x-acad",
			"application/autocad_dwg", "application/dwg", "application/x-dwg",
			"application/x-autocad", "drawing/dwg").
		withKind(KindImage)
	dxf = newMIMEType("image/vnd.dxf", ".dxf", matchDXF).withKind(KindImage)
	dcm = newMIMEType("application/dicom", ".dcm", matchDICOM).withKind(KindImage)
)

// Audio formats.
var (
	mp3 = newMIMEType("audio/mpeg", ".mp3", matchMP3).
		withAliases("audio/x-mpeg", "audio/mp3").withKind(KindAudio)
	flac = newMIMEType("audio/flac", ".flac", matchFLAC).withKind(KindAudio)
	wav  = newMIMEType("audio/wav", ".wav", matchWAV).
		withAliases("audio/x-wav", "audio/vnd.wave", "audio/wave").withKind(KindAudio)
	aiff = newMIMEType("audio/aiff", ".aiff", matchAIFF).
		withExtensionAliases(".aif").withKind(KindAudio)
	midi = newMIMEType("audio/midi", ".midi", matchMIDI).
		withAliases("audio/mid").withExtensionAliases(".mid").withKind(KindAudio)

	ogg = newMIMEType("application/ogg", ".ogg", matchOgg, oggAudio, oggVideo).
		withExtensionAliases(".oga", ".opus", ".ogv").withKind(KindAudio)
	oggAudio = newMIMEType("audio/ogg", ".oga", matchOggAudio).withKind(KindAudio)
	oggVideo = newMIMEType("video/ogg", ".ogv", matchOggVideo).withKind(KindVideo)

	ape      = newMIMEType("audio/ape", ".ape", matchApe).withKind(KindAudio)
	musePack = newMIMEType("audio/musepack", ".mpc", matchMusePack).withKind(KindAudio)
	au       = newMIMEType("audio/basic", ".au", matchAu).
			withExtensionAliases(".snd").withKind(KindAudio)
	amr = newMIMEType("audio/amr", ".amr", matchAMR).
		withAliases("audio/amr-nb").withKind(KindAudio)
	voc = newMIMEType("audio/x-unknown", ".voc", matchVoc).withKind(KindAudio)
	m3u = newMIMEType("audio/x-mpegurl", ".m3u", matchM3U).
		withAliases("audio/mpegurl").withExtensionAliases(".m3u8").withKind(KindText)
	aac = newMIMEType("audio/aac", ".aac", matchAAC).withKind(KindAudio)
	qcp = newMIMEType("audio/qcelp", ".qcp", matchQCP).withKind(KindAudio)

	aMP4 = newMIMEType("audio/mp4", ".mp4", matchAudioMP4).
		withAliases("audio/x-m4a", "audio/x-mp4a").withKind(KindAudio)
	m4v = newMIMEType("video/x-m4v", ".m4v", matchM4V).withKind(KindVideo)
)

// Video formats.
var (
	mp4 = newMIMEType("video/mp4", ".mp4", matchMP4,
		avif, threeGPP, threeGPP2, aMP4, m4v, heic, heicSeq, heif, heifSeq,
	).withKind(KindVideo)

	threeGPP = newMIMEType("video/3gpp", ".3gp", match3GPP).
			withAliases("video/3gp", "audio/3gpp").withKind(KindVideo)
	threeGPP2 = newMIMEType("video/3gpp2", ".3g2", match3GPP2).
			withAliases("video/3g2", "audio/3gpp2").withKind(KindVideo)

	webM = newMIMEType("video/webm", ".webm", matchWebM).
		withAliases("audio/webm").withKind(KindVideo)
	mkv = newMIMEType("video/x-matroska", ".mkv", matchMKV).
		withExtensionAliases(".mk3d", ".mka", ".mks").withKind(KindVideo)
	avi = newMIMEType("video/x-msvideo", ".avi", matchAVI).
		withAliases("video/avi", "video/msvideo").withKind(KindVideo)
	mpegVideo = newMIMEType("video/mpeg", ".mpeg", matchMPEG).withKind(KindVideo)
	quickTime = newMIMEType("video/quicktime", ".mov", matchQuickTime).withKind(KindVideo)
	mqv       = newMIMEType("video/quicktime", ".mqv", matchMQV).withKind(KindVideo)
	flv       = newMIMEType("video/x-flv", ".flv", matchFLV).withKind(KindVideo)
	asf       = newMIMEType("video/x-ms-asf", ".asf", matchASF).
			withAliases("video/asf", "video/x-ms-wmv").withKind(KindVideo)
	rmvb = newMIMEType("application/vnd.rn-realmedia-vbr", ".rmvb", matchRMVB).withKind(KindVideo)
)

// Executable, font and miscellaneous formats.
var (
	exe = newMIMEType("application/vnd.microsoft.portable-executable", ".exe", matchExe).
		withKind(KindExecutable)

	elf = newMIMEType("application/x-elf", "", matchELF,
		elfObj, elfExe, elfLib, elfDump,
	).withExtensionAliases(".so").withKind(KindExecutable)
	elfObj  = newMIMEType("application/x-object", "", matchELFObj).withKind(KindExecutable)
	elfExe  = newMIMEType("application/x-executable", "", matchELFExe).withKind(KindExecutable)
	elfLib  = newMIMEType("application/x-sharedlib", ".so", matchELFLib).withKind(KindExecutable)
	elfDump = newMIMEType("application/x-coredump", "", matchELFDump).withKind(KindExecutable)

	macho = newMIMEType("application/x-mach-binary", ".macho", matchMachO).withKind(KindExecutable)
	class = newMIMEType("application/x-java-applet; charset=binary", ".class", matchClass).
		withAliases("application/x-java-applet").withKind(KindApplication)
	wasm = newMIMEType("application/wasm", ".wasm", matchWasm).withKind(KindExecutable)
	swf  = newMIMEType("application/x-shockwave-flash", ".swf", matchSWF).withKind(KindApplication)
	crx  = newMIMEType("application/x-chrome-extension", ".crx", matchCRX).withKind(KindApplication)
	p7s  = newMIMEType("application/pkcs7-signature", ".p7s", matchP7S).withKind(KindApplication)

	ttf = newMIMEType("font/ttf", ".ttf", matchTTF).
		withAliases("font/sfnt", "application/x-font-ttf", "application/font-sfnt").
		withKind(KindFont)
	woff  = newMIMEType("font/woff", ".woff", matchWOFF).withKind(KindFont)
	woff2 = newMIMEType("font/woff2", ".woff2", matchWOFF2).withKind(KindFont)
	otf   = newMIMEType("font/otf", ".otf", matchOTF).withKind(KindFont)
	ttc   = newMIMEType("font/collection", ".ttc", matchTTC).withKind(KindFont)
	eot   = newMIMEType("application/vnd.ms-fontobject", ".eot", matchEOT).withKind(KindFont)

	sqlite3 = newMIMEType("application/vnd.sqlite3", ".sqlite", matchSQLite).
		withAliases("application/x-sqlite3").withKind(KindDatabase)
	mdb     = newMIMEType("application/x-msaccess", ".mdb", matchMDB).withKind(KindDatabase)
	accdb   = newMIMEType("application/x-msaccess", ".accdb", matchAccDB).withKind(KindDatabase)
	parquet = newMIMEType("application/vnd.apache.parquet", ".parquet", matchParquet).
		withAliases("application/x-parquet").withKind(KindDatabase)

	nes  = newMIMEType("application/vnd.nintendo.snes.rom", ".nes", matchNES)
	lnk  = newMIMEType("application/x-ms-shortcut", ".lnk", matchLnk)
	tzif = newMIMEType("application/tzif", "", matchTzif)
	glb  = newMIMEType("model/gltf-binary", ".glb", matchGLB).withKind(KindModel)

	pcap = newMIMEType("application/vnd.tcpdump.pcap", ".pcap", matchPcap).
		withAliases("application/x-pcap").withKind(KindApplication)
	pcapng = newMIMEType("application/x-pcapng", ".pcapng", matchPcapng).
		withKind(KindApplication)
)
