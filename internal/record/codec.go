package record

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "txt"
	FormatPGN  Format = "pgn"
)

var (
	ErrUnknownFormat = errors.New("unknown record format")
	ErrBadEncoding   = errors.New("record is neither UTF-8 nor GBK")
)

// ParseFormat 接受 "json" / "txt" / "text" / "pgn"，大小写不敏感
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "txt", "text":
		return FormatText, nil
	case "pgn":
		return FormatPGN, nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
}

// FormatFromPath 按扩展名判断格式；.xqf/.cbr 以及未知扩展名都按 JSON 存取
func FormatFromPath(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt":
		return FormatText
	case ".pgn":
		return FormatPGN
	}
	return FormatJSON
}

func (r *Record) Encode(w io.Writer, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatText:
		bw := bufio.NewWriter(w)
		if r.FEN != "" {
			fmt.Fprintf(bw, "%s %s\n", textFENPrefix, r.FEN)
		}
		for i, mv := range r.Moves {
			red := mv[0]
			if red == "" {
				red = blackFirstMark
			}
			line := strings.TrimRight(fmt.Sprintf("%d. %s %s", i+1, red, mv[1]), " ")
			bw.WriteString(line)
			bw.WriteByte('\n')
		}
		return bw.Flush()
	case FormatPGN:
		return r.encodePGN(w)
	}
	return fmt.Errorf("encode %q: %w", f, ErrUnknownFormat)
}

const (
	// 黑先时红方一栏的占位
	blackFirstMark = "..."
	textFENPrefix  = "FEN:"
)

func (r *Record) encodePGN(w io.Writer) error {
	event, date, result := r.Event, r.Date, r.Result
	if event == "" {
		event = "Local Game"
	}
	if date == "" {
		date = time.Now().Format("2006.01.02")
	}
	if result == "" {
		result = "*"
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "[Event %q]\n[Date %q]\n[Result %q]\n", event, date, result)
	if r.FEN != "" {
		fmt.Fprintf(bw, "[FEN %q]\n", r.FEN)
	}
	bw.WriteByte('\n')

	var tokens []string
	for i, mv := range r.Moves {
		red := mv[0]
		if red == "" {
			red = blackFirstMark
		}
		tokens = append(tokens, fmt.Sprintf("%d. %s", i+1, red))
		if mv[1] != "" {
			tokens = append(tokens, mv[1])
		}
	}
	tokens = append(tokens, result)
	bw.WriteString(strings.Join(tokens, " "))
	bw.WriteByte('\n')
	return bw.Flush()
}

// Decode 读入记谱。内容可以是 UTF-8（可带 BOM）或 GBK。
func Decode(rd io.Reader, f Format) (*Record, error) {
	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, err
	}
	text, err := decodeText(data)
	if err != nil {
		return nil, err
	}
	switch f {
	case FormatJSON:
		r := New()
		if err := json.Unmarshal([]byte(text), r); err != nil {
			return nil, fmt.Errorf("decode json record: %w", err)
		}
		if r.Moves == nil {
			r.Moves = [][2]string{}
		}
		return r, nil
	case FormatText:
		return parseText(text), nil
	case FormatPGN:
		return parsePGN(text), nil
	}
	return nil, fmt.Errorf("decode %q: %w", f, ErrUnknownFormat)
}

func decodeText(data []byte) (string, error) {
	if bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) {
		data = data[3:]
	}
	if utf8.Valid(data) {
		return string(data), nil
	}
	reader := transform.NewReader(bytes.NewReader(data), simplifiedchinese.GBK.NewDecoder())
	decoded, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadEncoding, err)
	}
	if !utf8.Valid(decoded) {
		return "", ErrBadEncoding
	}
	return string(decoded), nil
}

// isPlaceholder 识别 "..." 这类只有点的记号
func isPlaceholder(tok string) bool {
	return tok != "" && strings.Trim(tok, ".") == ""
}

// 形如 "1. 兵七进一 炮2平3"、"1. 兵七进一"，黑先为 "1. ... 炮2平3"；
// 可选的首行 "FEN: <局面>" 给出起始局面
func parseText(text string) *Record {
	r := New()
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if fen, ok := strings.CutPrefix(line, textFENPrefix); ok {
			r.FEN = strings.TrimSpace(fen)
			continue
		}
		rest := line
		if _, after, ok := strings.Cut(line, "."); ok {
			rest = after
		}
		tokens := strings.Fields(rest)
		if len(tokens) > 0 && isPlaceholder(tokens[0]) {
			tokens[0] = ""
		}
		switch len(tokens) {
		case 0:
			continue
		case 1:
			r.Moves = append(r.Moves, [2]string{tokens[0], ""})
		default:
			r.Moves = append(r.Moves, [2]string{tokens[0], tokens[1]})
		}
	}
	return r
}

var (
	pgnHeaderRe  = regexp.MustCompile(`^\[(\w+)\s+"(.*)"\]$`)
	pgnCommentRe = regexp.MustCompile(`\{[^}]*\}`)
	pgnNumberRe  = regexp.MustCompile(`^\d+(\.+)`)
)

func isResultToken(tok string) bool {
	switch tok {
	case "*", "1-0", "0-1", "1/2-1/2":
		return true
	}
	return false
}

func parsePGN(text string) *Record {
	r := New()
	var body []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "[") {
			if m := pgnHeaderRe.FindStringSubmatch(line); m != nil {
				switch m[1] {
				case "Event":
					r.Event = m[2]
				case "Date":
					r.Date = m[2]
				case "Result":
					r.Result = m[2]
				case "FEN":
					r.FEN = m[2]
				}
			}
			continue
		}
		body = append(body, line)
	}

	joined := pgnCommentRe.ReplaceAllString(strings.Join(body, " "), " ")
	// 红方一栏出现 "..." 或 "1..." 时留空，黑方着法落在黑方一栏
	var plies []string
	for _, tok := range strings.Fields(joined) {
		if isResultToken(tok) {
			break
		}
		if m := pgnNumberRe.FindStringSubmatch(tok); m != nil {
			tok = tok[len(m[0]):]
			if len(m[1]) > 1 && len(plies)%2 == 0 {
				plies = append(plies, "")
			}
		}
		if tok == "" {
			continue
		}
		if isPlaceholder(tok) {
			if len(plies)%2 == 0 {
				plies = append(plies, "")
			}
			continue
		}
		plies = append(plies, tok)
	}
	for i := 0; i < len(plies); i += 2 {
		mv := [2]string{plies[i], ""}
		if i+1 < len(plies) {
			mv[1] = plies[i+1]
		}
		r.Moves = append(r.Moves, mv)
	}
	return r
}
