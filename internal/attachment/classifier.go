package attachment

import "strings"

// Category is the document class assigned to an attachment based on its
// file extension.
type Category string

const (
	CategoryPDF            Category = "pdf"
	CategoryImage          Category = "image"
	CategoryText           Category = "text"
	CategoryMedicalImaging Category = "medical-imaging"
	CategoryWord           Category = "word"
	CategoryOther          Category = "other"
)

// Categories lists every category in display order. Summaries and badges
// are rendered in this order.
var Categories = []Category{
	CategoryPDF,
	CategoryImage,
	CategoryMedicalImaging,
	CategoryWord,
	CategoryText,
	CategoryOther,
}

var categoryByExt = map[string]Category{
	"pdf":   CategoryPDF,
	"png":   CategoryImage,
	"jpg":   CategoryImage,
	"jpeg":  CategoryImage,
	"gif":   CategoryImage,
	"bmp":   CategoryImage,
	"tiff":  CategoryImage,
	"dcm":   CategoryMedicalImaging,
	"dicom": CategoryMedicalImaging,
	"doc":   CategoryWord,
	"docx":  CategoryWord,
	"txt":   CategoryText,
}

// Classify maps a file extension to its document category. The lookup is
// case-insensitive and total: empty or unknown extensions resolve to
// CategoryOther, never an error.
func Classify(extension string) Category {
	if c, ok := categoryByExt[strings.ToLower(extension)]; ok {
		return c
	}
	return CategoryOther
}

// Label returns the human-facing name used next to attachment icons.
func (c Category) Label() string {
	switch c {
	case CategoryPDF:
		return "PDF"
	case CategoryImage:
		return "Image"
	case CategoryText:
		return "Text"
	case CategoryMedicalImaging:
		return "Medical imaging"
	case CategoryWord:
		return "Word document"
	default:
		return "File"
	}
}

// Icon returns the icon identifier the view layer renders for the category.
func (c Category) Icon() string {
	switch c {
	case CategoryPDF:
		return "file-pdf"
	case CategoryImage:
		return "file-image"
	case CategoryText:
		return "file-alt"
	case CategoryMedicalImaging:
		return "file-medical"
	case CategoryWord:
		return "file-word"
	default:
		return "file"
	}
}
