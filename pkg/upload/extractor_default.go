package upload

func defaultExtractors() map[FileType]Extractor {
	img := ImageExtractor{}
	return map[FileType]Extractor{
		FileTypeJPG:  img,
		FileTypeJPEG: img,
		FileTypePNG:  img,
		FileTypePDF:  PDFExtractor{},
		FileTypeTXT:  TextExtractor{},
		FileTypeCSV:  CSVExtractor{},
		FileTypeXLSX: XLSXExtractor{},
		FileTypeXLS:  XLSExtractor{},
		FileTypeJSON: JSONExtractor{},
		FileTypeDOCX: DocxExtractor{},
	}
}
