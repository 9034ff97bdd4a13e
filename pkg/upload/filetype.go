package upload

import "strings"

// FileType is the normalized declared type of an upload.
type FileType string

const (
	FileTypeUnknown FileType = ""
	FileTypeJPG     FileType = "jpg"
	FileTypeJPEG    FileType = "jpeg"
	FileTypePNG     FileType = "png"
	FileTypePDF     FileType = "pdf"
	FileTypeTXT     FileType = "txt"
	FileTypeCSV     FileType = "csv"
	FileTypeXLSX    FileType = "xlsx"
	FileTypeXLS     FileType = "xls"
	FileTypeJSON    FileType = "json"
	FileTypeDOCX    FileType = "docx"
)

var knownTypes = map[string]FileType{
	"jpg":  FileTypeJPG,
	"jpeg": FileTypeJPEG,
	"png":  FileTypePNG,
	"pdf":  FileTypePDF,
	"txt":  FileTypeTXT,
	"csv":  FileTypeCSV,
	"xlsx": FileTypeXLSX,
	"xls":  FileTypeXLS,
	"json": FileTypeJSON,
	"docx": FileTypeDOCX,
}

// SupportedTypes lists every accepted extension in display order.
var SupportedTypes = []FileType{
	FileTypeJPG, FileTypeJPEG, FileTypePNG, FileTypePDF, FileTypeTXT,
	FileTypeCSV, FileTypeXLSX, FileTypeXLS, FileTypeJSON, FileTypeDOCX,
}

// ParseFileType returns the type named by the lower-cased suffix after the
// last '.' of the base name. The content is never inspected.
func ParseFileType(name string) FileType {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return FileTypeUnknown
	}
	return knownTypes[strings.ToLower(name[i+1:])]
}

// Ext returns the raw lower-cased extension of name without the dot.
func Ext(name string) string {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return ""
	}
	return strings.ToLower(name[i+1:])
}

func (t FileType) IsImage() bool {
	return t == FileTypeJPG || t == FileTypeJPEG || t == FileTypePNG
}
