// The console encoder below is derived from zap's JSON encoder:
// https://github.com/uber-go/zap/blob/master/zapcore/json_encoder.go
// It prints one line per entry: level, logger name, message and then the
// fields in braces, coloring each part when enabled.

package logging

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"math"
	"time"
	"unicode/utf8"

	"github.com/fatih/color"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"

	"github.com/rdeusser/orderedset/internal/safepool"
)

// For JSON-escaping; see safeAddString below.
const hex = "0123456789abcdef"

var (
	nullLiteralBytes = []byte("null")
	bufPool          = buffer.NewPool()
	encoderPool      = safepool.New(func() *cliEncoder { return &cliEncoder{} })
	levelColor       = map[zapcore.Level]color.Attribute{
		zapcore.DebugLevel:  color.FgBlue,
		zapcore.InfoLevel:   color.FgGreen,
		zapcore.WarnLevel:   color.FgYellow,
		zapcore.ErrorLevel:  color.FgRed,
		zapcore.DPanicLevel: color.FgRed,
		zapcore.PanicLevel:  color.FgRed,
		zapcore.FatalLevel:  color.FgRed,
	}
)

type cliEncoder struct {
	*zapcore.EncoderConfig
	colored        bool
	buf            *buffer.Buffer
	openNamespaces int

	// for encoding generic values by reflection
	reflectBuf *buffer.Buffer
	reflectEnc zapcore.ReflectedEncoder
}

func newCLIEncoder(cfg zapcore.EncoderConfig, colored bool) *cliEncoder {
	if cfg.LineEnding == "" {
		cfg.LineEnding = zapcore.DefaultLineEnding
	}

	if cfg.NewReflectedEncoder == nil {
		cfg.NewReflectedEncoder = defaultReflectedEncoder
	}

	return &cliEncoder{
		EncoderConfig: &cfg,
		colored:       colored,
		buf:           bufPool.Get(),
	}
}

func (enc *cliEncoder) Clone() zapcore.Encoder {
	clone := enc.clone()
	clone.buf.Write(enc.buf.Bytes())
	return clone
}

func (enc *cliEncoder) EncodeEntry(entry zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	final := enc.clone()

	if final.LevelKey != "" {
		final.encodeLevel(entry.Level)
	}

	if entry.LoggerName != "" && final.NameKey != "" {
		final.buf.AppendByte(' ')
		final.buf.AppendString(final.paint(entry.LoggerName, color.FgHiBlack))
	}

	if final.MessageKey != "" && entry.Message != "" {
		final.buf.AppendByte(' ')
		final.paintEscaped(entry.Message, color.FgHiWhite)
	}

	if enc.buf.Len() > 0 || len(fields) > 0 {
		final.buf.AppendString(" { ")
		final.buf.Write(enc.buf.Bytes())

		for i := range fields {
			fields[i].AddTo(final)
		}

		final.closeOpenNamespaces()
		final.buf.AppendString(" }")
	}

	final.buf.AppendString(final.LineEnding)

	buf := final.buf

	if final.reflectBuf != nil {
		final.reflectBuf.Free()
	}

	final.EncoderConfig = nil
	final.buf = nil
	final.openNamespaces = 0
	final.reflectBuf = nil
	final.reflectEnc = nil
	encoderPool.Put(final)

	return buf, nil
}

// Logging-specific marshalers.
func (enc *cliEncoder) AddArray(key string, marshaler zapcore.ArrayMarshaler) error {
	enc.addKey(key)
	return enc.AppendArray(marshaler)
}

func (enc *cliEncoder) AddObject(key string, marshaler zapcore.ObjectMarshaler) error {
	enc.addKey(key)
	return enc.AppendObject(marshaler)
}

// Built-in types.
func (enc *cliEncoder) AddBinary(key string, value []byte) {
	enc.AddString(key, base64.StdEncoding.EncodeToString(value))
}

func (enc *cliEncoder) AddByteString(key string, value []byte) {
	enc.addKey(key)
	enc.AppendByteString(value)
}

func (enc *cliEncoder) AddBool(key string, value bool) {
	enc.addKey(key)
	enc.AppendBool(value)
}

func (enc *cliEncoder) AddComplex128(key string, value complex128) {
	enc.addKey(key)
	enc.AppendComplex128(value)
}

func (enc *cliEncoder) AddComplex64(key string, value complex64) {
	enc.addKey(key)
	enc.AppendComplex64(value)
}

func (enc *cliEncoder) AddDuration(key string, value time.Duration) {
	enc.addKey(key)
	enc.AppendDuration(value)
}

func (enc *cliEncoder) AddFloat64(key string, value float64) {
	enc.addKey(key)
	enc.AppendFloat64(value)
}

func (enc *cliEncoder) AddFloat32(key string, value float32) {
	enc.addKey(key)
	enc.AppendFloat32(value)
}

func (enc *cliEncoder) AddInt(key string, value int)     { enc.AddInt64(key, int64(value)) }
func (enc *cliEncoder) AddInt32(key string, value int32) { enc.AddInt64(key, int64(value)) }
func (enc *cliEncoder) AddInt16(key string, value int16) { enc.AddInt64(key, int64(value)) }
func (enc *cliEncoder) AddInt8(key string, value int8)   { enc.AddInt64(key, int64(value)) }

func (enc *cliEncoder) AddInt64(key string, value int64) {
	enc.addKey(key)
	enc.AppendInt64(value)
}

func (enc *cliEncoder) AddString(key, value string) {
	enc.addKey(key)
	enc.AppendString(value)
}

func (enc *cliEncoder) AddTime(key string, value time.Time) {
	enc.addKey(key)
	enc.AppendTime(value)
}

func (enc *cliEncoder) AddUint(key string, value uint)       { enc.AddUint64(key, uint64(value)) }
func (enc *cliEncoder) AddUint32(key string, value uint32)   { enc.AddUint64(key, uint64(value)) }
func (enc *cliEncoder) AddUint16(key string, value uint16)   { enc.AddUint64(key, uint64(value)) }
func (enc *cliEncoder) AddUint8(key string, value uint8)     { enc.AddUint64(key, uint64(value)) }
func (enc *cliEncoder) AddUintptr(key string, value uintptr) { enc.AddUint64(key, uint64(value)) }

func (enc *cliEncoder) AddUint64(key string, value uint64) {
	enc.addKey(key)
	enc.AppendUint64(value)
}

// AddReflected uses reflection to serialize arbitrary objects, so it can be
// slow and allocation-heavy.
func (enc *cliEncoder) AddReflected(key string, value interface{}) error {
	valueBytes, err := enc.encodeReflected(value)
	if err != nil {
		return err
	}
	enc.addKey(key)
	_, err = enc.buf.Write(valueBytes)
	return err
}

// OpenNamespace opens an isolated namespace where all subsequent fields will
// be added.
func (enc *cliEncoder) OpenNamespace(key string) {
	enc.addKey(key)
	enc.buf.AppendByte('{')
	enc.openNamespaces++
}

// The following implements the PrimitiveArrayEncoder and ArrayEncoder interfaces.
func (enc *cliEncoder) AppendBool(value bool) {
	enc.addElementSeparator()
	enc.buf.AppendBool(value)
}

func (enc *cliEncoder) AppendByteString(value []byte) {
	enc.addElementSeparator()
	enc.paintQuoted(string(value), color.FgGreen)
}

func (enc *cliEncoder) AppendComplex128(value complex128) { enc.appendComplex(value, 64) }
func (enc *cliEncoder) AppendComplex64(value complex64)   { enc.appendComplex(complex128(value), 32) }
func (enc *cliEncoder) AppendFloat64(value float64)       { enc.appendFloat(value, 64) }
func (enc *cliEncoder) AppendFloat32(value float32)       { enc.appendFloat(float64(value), 32) }
func (enc *cliEncoder) AppendInt(value int)               { enc.AppendInt64(int64(value)) }
func (enc *cliEncoder) AppendInt32(value int32)           { enc.AppendInt64(int64(value)) }
func (enc *cliEncoder) AppendInt16(value int16)           { enc.AppendInt64(int64(value)) }
func (enc *cliEncoder) AppendInt8(value int8)             { enc.AppendInt64(int64(value)) }

func (enc *cliEncoder) AppendInt64(value int64) {
	enc.addElementSeparator()
	enc.buf.AppendInt(value)
}

func (enc *cliEncoder) AppendString(value string) {
	enc.addElementSeparator()
	enc.paintQuoted(value, color.FgGreen)
}

func (enc *cliEncoder) AppendUint(value uint)       { enc.AppendUint64(uint64(value)) }
func (enc *cliEncoder) AppendUint32(value uint32)   { enc.AppendUint64(uint64(value)) }
func (enc *cliEncoder) AppendUint16(value uint16)   { enc.AppendUint64(uint64(value)) }
func (enc *cliEncoder) AppendUint8(value uint8)     { enc.AppendUint64(uint64(value)) }
func (enc *cliEncoder) AppendUintptr(value uintptr) { enc.AppendUint64(uint64(value)) }

func (enc *cliEncoder) AppendUint64(value uint64) {
	enc.addElementSeparator()
	enc.buf.AppendUint(value)
}

func (enc *cliEncoder) AppendDuration(value time.Duration) {
	cur := enc.buf.Len()
	if e := enc.EncodeDuration; e != nil {
		e(value, enc)
	}
	if cur == enc.buf.Len() {
		// EncodeDuration is a no-op. Fall back to nanoseconds.
		enc.AppendInt64(int64(value))
	}
}

func (enc *cliEncoder) AppendTime(value time.Time) {
	cur := enc.buf.Len()
	if e := enc.EncodeTime; e != nil {
		e(value, enc)
	}
	if cur == enc.buf.Len() {
		// EncodeTime is a no-op. Fall back to nanos since epoch.
		enc.AppendInt64(value.UnixNano())
	}
}

func (enc *cliEncoder) AppendArray(value zapcore.ArrayMarshaler) error {
	enc.addElementSeparator()
	enc.buf.AppendByte('[')
	err := value.MarshalLogArray(enc)
	enc.buf.AppendByte(']')
	return err
}

func (enc *cliEncoder) AppendObject(value zapcore.ObjectMarshaler) error {
	// Close ONLY new openNamespaces that are created during
	// AppendObject().
	old := enc.openNamespaces
	enc.openNamespaces = 0
	enc.addElementSeparator()
	enc.buf.AppendByte('{')
	err := value.MarshalLogObject(enc)
	enc.closeOpenNamespaces()
	enc.buf.AppendByte('}')
	enc.openNamespaces = old
	return err
}

func (enc *cliEncoder) AppendReflected(value interface{}) error {
	valueBytes, err := enc.encodeReflected(value)
	if err != nil {
		return err
	}
	enc.addElementSeparator()
	_, err = enc.buf.Write(valueBytes)
	return err
}

// Only invoke the standard JSON encoder if there is actually something to
// encode; otherwise write JSON null literal directly.
func (enc *cliEncoder) encodeReflected(obj interface{}) ([]byte, error) {
	if obj == nil {
		return nullLiteralBytes, nil
	}
	enc.resetReflectBuf()
	if err := enc.reflectEnc.Encode(obj); err != nil {
		return nil, err
	}
	enc.reflectBuf.TrimNewline()
	return enc.reflectBuf.Bytes(), nil
}

func (enc *cliEncoder) resetReflectBuf() {
	if enc.reflectBuf == nil {
		enc.reflectBuf = bufPool.Get()
		enc.reflectEnc = enc.NewReflectedEncoder(enc.reflectBuf)
	} else {
		enc.reflectBuf.Reset()
	}
}

// appendComplex appends the encoded form of the provided complex128 value.
// precision specifies the encoding precision for the real and imaginary
// components of the complex number.
func (enc *cliEncoder) appendComplex(val complex128, precision int) {
	enc.addElementSeparator()
	r, i := real(val), imag(val)
	enc.buf.AppendByte('"')
	enc.buf.AppendFloat(r, precision)
	if i >= 0 {
		enc.buf.AppendByte('+')
	}
	enc.buf.AppendFloat(i, precision)
	enc.buf.AppendByte('i')
	enc.buf.AppendByte('"')
}

func (enc *cliEncoder) appendFloat(val float64, bitSize int) {
	enc.addElementSeparator()
	switch {
	case math.IsNaN(val):
		enc.buf.AppendString(`"NaN"`)
	case math.IsInf(val, 1):
		enc.buf.AppendString(`"+Inf"`)
	case math.IsInf(val, -1):
		enc.buf.AppendString(`"-Inf"`)
	default:
		enc.buf.AppendFloat(val, bitSize)
	}
}

func (enc *cliEncoder) clone() *cliEncoder {
	clone := encoderPool.Get()
	clone.EncoderConfig = enc.EncoderConfig
	clone.colored = enc.colored
	clone.buf = bufPool.Get()
	return clone
}

// encodeLevel pads the level to the width of the longest common one so
// messages line up.
func (enc *cliEncoder) encodeLevel(level zapcore.Level) {
	s := level.CapitalString()
	for len(s) < len("DEBUG") {
		s += " "
	}
	enc.buf.AppendString(enc.paint(s, levelColor[level]))
}

func (enc *cliEncoder) addKey(key string) {
	enc.addElementSeparator()
	enc.paintQuoted(key, color.FgBlue, color.Bold)
	enc.buf.AppendString(": ")
}

// addElementSeparator relies on punctuation being written uncolored, so the
// last byte tells whether a value precedes.
func (enc *cliEncoder) addElementSeparator() {
	last := enc.buf.Len() - 1
	if last < 0 {
		return
	}
	switch enc.buf.Bytes()[last] {
	case '{', '[', ' ':
		return
	default:
		enc.buf.AppendString(", ")
	}
}

func (enc *cliEncoder) closeOpenNamespaces() {
	for i := 0; i < enc.openNamespaces; i++ {
		enc.buf.AppendByte('}')
	}
	enc.openNamespaces = 0
}

func (enc *cliEncoder) paint(s string, attributes ...color.Attribute) string {
	c := color.New(attributes...)
	if enc.colored {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}

// paintEscaped writes s with JSON escaping applied so a value cannot break
// the line.
func (enc *cliEncoder) paintEscaped(s string, attributes ...color.Attribute) {
	scratch := bufPool.Get()
	defer scratch.Free()

	safeAddString(scratch, s)
	enc.buf.AppendString(enc.paint(scratch.String(), attributes...))
}

func (enc *cliEncoder) paintQuoted(s string, attributes ...color.Attribute) {
	scratch := bufPool.Get()
	defer scratch.Free()

	scratch.AppendByte('"')
	safeAddString(scratch, s)
	scratch.AppendByte('"')
	enc.buf.AppendString(enc.paint(scratch.String(), attributes...))
}

// safeAddString JSON-escapes a string and appends it to buf.
func safeAddString(buf *buffer.Buffer, s string) {
	for i := 0; i < len(s); {
		if tryAddRuneSelf(buf, s[i]) {
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			buf.AppendString(`\ufffd`)
			i++
			continue
		}
		buf.AppendString(s[i : i+size])
		i += size
	}
}

// tryAddRuneSelf appends b if it is valid UTF-8 character represented in a
// single byte.
func tryAddRuneSelf(buf *buffer.Buffer, b byte) bool {
	if b >= utf8.RuneSelf {
		return false
	}
	if 0x20 <= b && b != '\\' && b != '"' {
		buf.AppendByte(b)
		return true
	}
	switch b {
	case '\\', '"':
		buf.AppendByte('\\')
		buf.AppendByte(b)
	case '\n':
		buf.AppendByte('\\')
		buf.AppendByte('n')
	case '\r':
		buf.AppendByte('\\')
		buf.AppendByte('r')
	case '\t':
		buf.AppendByte('\\')
		buf.AppendByte('t')
	default:
		// Encode bytes < 0x20, except for the escape sequences above.
		buf.AppendString(`\u00`)
		buf.AppendByte(hex[b>>4])
		buf.AppendByte(hex[b&0xF])
	}
	return true
}

func defaultReflectedEncoder(w io.Writer) zapcore.ReflectedEncoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc
}
