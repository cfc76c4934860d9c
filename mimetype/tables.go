package mimetype

// signature maps a leading byte pattern to a MIME type. Patterns are
// checked in table order against a bounded prefix of the content; the
// first match wins.
type signature struct {
	prefix []byte
	mime   string
}

// Fallback and container types.
const (
	// TypeOctetStream is the generic fallback when nothing matches.
	TypeOctetStream = "application/octet-stream"

	// TypeZip covers zip containers; office formats (docx, xlsx, ...)
	// share this signature and are refined by extension.
	TypeZip = "application/zip"

	// TypeOLEStorage covers legacy OLE compound documents (doc, xls, ppt).
	TypeOLEStorage = "application/x-ole-storage"
)

// signatures is the ordered magic-byte table. More specific patterns come
// before shorter ones sharing a prefix.
var signatures = []signature{
	{[]byte("%PDF"), "application/pdf"},
	{[]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}, "image/png"},
	{[]byte{0xFF, 0xD8, 0xFF}, "image/jpeg"},
	{[]byte("GIF87a"), "image/gif"},
	{[]byte("GIF89a"), "image/gif"},
	{[]byte{'I', 'I', '*', 0x00}, "image/tiff"},
	{[]byte{'M', 'M', 0x00, '*'}, "image/tiff"},
	{[]byte("BM"), "image/bmp"},
	{[]byte{'P', 'K', 0x03, 0x04}, TypeZip},
	{[]byte{0x1F, 0x8B}, "application/gzip"},
	{[]byte("{\\rtf"), "application/rtf"},
	{[]byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}, TypeOLEStorage},
	{[]byte("%!PS"), "application/postscript"},
	{[]byte("<?xml"), "application/xml"},
}

// extensionTypes maps lower-case file extensions (without dot) to their
// canonical MIME type. The inverse mapping is derived once at package
// init; both are read-only afterwards.
var extensionTypes = map[string]string{
	"pdf":      "application/pdf",
	"txt":      "text/plain",
	"text":     "text/plain",
	"log":      "text/plain",
	"md":       "text/markdown",
	"markdown": "text/markdown",
	"html":     "text/html",
	"htm":      "text/html",
	"xml":      "application/xml",
	"json":     "application/json",
	"csv":      "text/csv",
	"tsv":      "text/tab-separated-values",
	"yaml":     "application/x-yaml",
	"yml":      "application/x-yaml",
	"toml":     "application/toml",
	"rtf":      "application/rtf",
	"eml":      "message/rfc822",
	"png":      "image/png",
	"jpg":      "image/jpeg",
	"jpeg":     "image/jpeg",
	"gif":      "image/gif",
	"bmp":      "image/bmp",
	"tiff":     "image/tiff",
	"tif":      "image/tiff",
	"webp":     "image/webp",
	"docx":     "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"xlsx":     "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"pptx":     "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	"odt":      "application/vnd.oasis.opendocument.text",
	"ods":      "application/vnd.oasis.opendocument.spreadsheet",
	"odp":      "application/vnd.oasis.opendocument.presentation",
	"doc":      "application/msword",
	"xls":      "application/vnd.ms-excel",
	"ppt":      "application/vnd.ms-powerpoint",
	"epub":     "application/epub+zip",
	"zip":      TypeZip,
	"gz":       "application/gzip",
	"ps":       "application/postscript",
}

// typeExtensions is the derived MIME → extensions mapping.
var typeExtensions map[string][]string

func init() {
	typeExtensions = make(map[string][]string, len(extensionTypes))
	for ext, mime := range extensionTypes {
		typeExtensions[mime] = append(typeExtensions[mime], ext)
	}
}
