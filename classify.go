package mediatype

// Reference types for the MIME type groups of the WHATWG MIME Sniffing
// standard, https://mimesniff.spec.whatwg.org/#mime-type-groups.
var (
	applicationOgg = New(Application, Standards, "ogg")

	fontTypes = []*MediaType{
		New(Application, Standards, "font-ttf"),
		New(Application, Standards, "font-cff"),
		New(Application, Standards, "font-off"),
		New(Application, Standards, "font-sfnt"),
		New(Application, Vendor, "ms-opentype"),
		New(Application, Standards, "font-woff"),
		New(Application, Vendor, "ms-fontobject"),
	}

	applicationZip = New(Application, Standards, "zip")

	archiveTypes = []*MediaType{
		New(Application, Standards, "x-rar-compressed"),
		applicationZip,
		New(Application, Standards, "x-gzip"),
	}

	xmlTypes = []*MediaType{
		New(Text, Standards, "xml"),
		New(Application, Standards, "xml"),
	}

	scriptableTypes = []*MediaType{
		New(Text, Standards, "html"),
		New(Application, Standards, "pdf"),
	}
)

func (mt *MediaType) oneOf(refs []*MediaType) bool {
	for _, ref := range refs {
		if ref.EqualMimePortion(mt) {
			return true
		}
	}
	return false
}

// IsImageType reports whether mt is in the image type group: any image/*
// type.
func (mt *MediaType) IsImageType() bool {
	return mt.typ == Image
}

// IsAudioOrVideoType reports whether mt is in the audio or video type group:
// any audio/* or video/* type, or application/ogg.
func (mt *MediaType) IsAudioOrVideoType() bool {
	return mt.typ == Audio || mt.typ == Video || applicationOgg.EqualMimePortion(mt)
}

// IsFontType reports whether mt is in the font type group.
func (mt *MediaType) IsFontType() bool {
	return mt.oneOf(fontTypes)
}

// IsZipBasedType reports whether mt has the +zip suffix or is
// application/zip.
func (mt *MediaType) IsZipBasedType() bool {
	return mt.suffix == "zip" || applicationZip.EqualMimePortion(mt)
}

// IsArchiveType reports whether mt is a RAR, ZIP, or gzip archive type.
func (mt *MediaType) IsArchiveType() bool {
	return mt.oneOf(archiveTypes)
}

// IsXMLType reports whether mt has the +xml suffix or is text/xml or
// application/xml.
func (mt *MediaType) IsXMLType() bool {
	return mt.suffix == "xml" || mt.oneOf(xmlTypes)
}

// IsScriptableMimeType reports whether mt is text/html or application/pdf.
func (mt *MediaType) IsScriptableMimeType() bool {
	return mt.oneOf(scriptableTypes)
}
