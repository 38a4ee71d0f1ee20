package icyengine

// MusicStyle selects the envelope applied between consecutive notes.
type MusicStyle int

const (
	MusicStyleNormal MusicStyle = iota
	MusicStyleLegato
	MusicStyleStaccato
)

// MusicNote is one parsed note: a letter A-G (rest 'P'), optional
// accidental, octave 0-6, a length in 64ths of a whole note, and a dotted
// flag that extends the length by half.
type MusicNote struct {
	Name   byte // 'A'..'G', or 'P' for a rest/pause
	Sharp  bool
	Flat   bool
	Octave int
	Length int
	Dotted bool
}

// MusicAction is one step of a parsed ANSI Music sequence.
type MusicAction interface {
	isMusicAction()
}

type musicMarker struct{}

func (musicMarker) isMusicAction() {}

type PlayNote struct {
	musicMarker
	Note MusicNote
}

type PlayPause struct {
	musicMarker
	Length int
}

type SetTempo struct {
	musicMarker
	BeatsPerMinute int
}

type SetOctave struct {
	musicMarker
	Octave int
}

type SetNoteLength struct {
	musicMarker
	Length int
}

type SetMusicStyle struct {
	musicMarker
	Style MusicStyle
}

// AnsiMusic is a fully parsed `ESC[M...\x0E` (or ANSI.SYS MUSIC) sequence:
// an ordered list of actions to be rendered by a host audio sink, plus the
// foreground-as-voice flag some BBS clients used to route the note stream
// to a specific channel.
type AnsiMusic struct {
	Actions           []MusicAction
	ForegroundAsVoice bool
}

// MusicOption selects which CSI final byte(s) a parser treats as entering
// ANSI Music mode. Both `M` and `N` are, outside of music, meaningful CSI
// finals of their own (`M` is Delete Line in ECMA-48; `N` has no standard
// ECMA-48 meaning and is free for this use), so the option controls which
// of them gets reinterpreted.
type MusicOption int

const (
	MusicOff         MusicOption = iota
	MusicConflicting             // CSI M enters music, CSI N does not
	MusicBanana                  // CSI N enters music, CSI M does not
	MusicBoth                    // both CSI M and CSI N enter music
)

// entersMusic reports whether finalByte ('M' or 'N') should switch the ANSI
// parser into ANSI Music mode under the given option, per the truth table
// of the music sub-grammar.
func entersMusic(opt MusicOption, finalByte byte) bool {
	switch opt {
	case MusicConflicting:
		return finalByte == 'M'
	case MusicBanana:
		return finalByte == 'N'
	case MusicBoth:
		return finalByte == 'M' || finalByte == 'N'
	default: // MusicOff
		return false
	}
}
