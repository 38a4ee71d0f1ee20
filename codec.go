package icyengine

// SaveOptions controls optional, opt-in behavior shared by every
// OutputFormat implementation: whether to append a SAUCE trailer, and
// whether to use the format's native compression scheme.
type SaveOptions struct {
	SaveSauce  bool
	Compress   bool
	Author     string
	Group      string
	Title      string
}

// LoadData carries optional load-time hints a host can supply to a codec:
// a maximum height cap (0 = unlimited) and a default buffer width used by
// formats that do not encode their own width.
type LoadData struct {
	MaxHeight    int
	DefaultWidth int
}

// OutputFormat is the shared contract every on-disk art codec implements:
// header/magic recognition, a lossy-or-lossless round trip to/from a
// Buffer, and optional SAUCE metadata handling.
type OutputFormat interface {
	FileExtension() string
	Name() string
	ToBytes(buf *Buffer, opts SaveOptions) ([]byte, error)
	LoadBuffer(path string, data []byte, hint *LoadData) (*Buffer, error)
}

// applyLoadHint clamps a freshly loaded buffer's logical height to a
// LoadData.MaxHeight cap, if one was supplied. The buffer itself is not
// resized; callers that need a hard cap should trim rows after loading if
// this returns a height smaller than buf.Height().
func applyLoadHint(height int, hint *LoadData) int {
	if hint != nil && hint.MaxHeight > 0 && height > hint.MaxHeight {
		return hint.MaxHeight
	}
	return height
}

// maybeStripSauce splits a trailing SAUCE record (if present) off data and
// populates buf.Sauce, returning the remaining codec-specific payload.
func maybeStripSauce(data []byte, buf *Buffer) []byte {
	if rec, cutoff, ok := ReadSauce(data); ok {
		buf.Sauce = rec
		return data[:cutoff]
	}
	return data
}

// maybeAppendSauce appends a SAUCE trailer built from opts and buf's
// dimensions when opts.SaveSauce is set; otherwise it returns body as-is.
func maybeAppendSauce(body []byte, buf *Buffer, opts SaveOptions, dataType, fileType uint8) []byte {
	if !opts.SaveSauce {
		return body
	}
	rec := &SauceRecord{
		Title:    opts.Title,
		Author:   opts.Author,
		Group:    opts.Group,
		DataType: dataType,
		FileType: fileType,
		TInfo1:   uint16(buf.Width()),
		TInfo2:   uint16(buf.Height()),
	}
	if buf.Sauce != nil && rec.Date == "" {
		rec.Date = buf.Sauce.Date
	}
	return WriteSauce(body, rec)
}
