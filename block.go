package mdsite

import (
	"strconv"
	"strings"
)

// Block markers.
const (
	blockSeparator = "\n\n"
	codeFence      = "```"
	quoteMarker    = ">"
	maxHeading     = 6
)

// unorderedMarkers are the accepted bullet prefixes. All lines of a list
// must use the same one.
var unorderedMarkers = []string{"* ", "- "}

// BlockType is the structural kind of a block.
type BlockType int

// Block types.
const (
	BlockParagraph BlockType = iota
	BlockHeading
	BlockCode
	BlockQuote
	BlockUnorderedList
	BlockOrderedList
)

var blockTypeNames = [...]string{
	BlockParagraph:     "paragraph",
	BlockHeading:       "heading",
	BlockCode:          "code",
	BlockQuote:         "quote",
	BlockUnorderedList: "unordered_list",
	BlockOrderedList:   "ordered_list",
}

func (t BlockType) String() string {
	if t < 0 || int(t) >= len(blockTypeNames) {
		return "BlockType(" + strconv.Itoa(int(t)) + ")"
	}
	return blockTypeNames[t]
}

// Block is a classified block of document text.
type Block struct {
	Text  string
	Type  BlockType
	Level int // heading level 1-6, 0 for other types
}

// SplitBlocks splits a document on blank lines, trims each block, and drops
// blocks that are empty. Order is preserved.
func SplitBlocks(markdown string) []string {
	var blocks []string
	for _, raw := range strings.Split(markdown, blockSeparator) {
		if b := strings.TrimSpace(raw); b != "" {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// ClassifyBlock determines the type of a block from its trimmed text.
// Rules are checked in priority order: heading, code, quote, unordered list,
// ordered list. Quote and list blocks with an inconsistent line fall back to
// paragraph.
func ClassifyBlock(block string) Block {
	text := strings.TrimSpace(block)
	if level := headingLevel(text); level > 0 {
		return Block{Text: text, Type: BlockHeading, Level: level}
	}

	lines := strings.Split(text, "\n")
	switch {
	case isCodeBlock(lines):
		return Block{Text: text, Type: BlockCode}
	case allHavePrefix(lines, quoteMarker):
		return Block{Text: text, Type: BlockQuote}
	case isUnorderedList(lines):
		return Block{Text: text, Type: BlockUnorderedList}
	case isOrderedList(lines):
		return Block{Text: text, Type: BlockOrderedList}
	}
	return Block{Text: text, Type: BlockParagraph}
}

// headingLevel returns the number of leading '#' when followed by a space,
// or 0 when text is not a heading.
func headingLevel(text string) int {
	level := 0
	for level < len(text) && text[level] == '#' {
		level++
	}
	if level == 0 || level > maxHeading {
		return 0
	}
	if level >= len(text) || text[level] != ' ' {
		return 0
	}
	return level
}

func isCodeBlock(lines []string) bool {
	return len(lines) > 1 &&
		strings.HasPrefix(lines[0], codeFence) &&
		strings.HasPrefix(lines[len(lines)-1], codeFence)
}

func allHavePrefix(lines []string, prefix string) bool {
	for _, line := range lines {
		if !strings.HasPrefix(line, prefix) {
			return false
		}
	}
	return true
}

func isUnorderedList(lines []string) bool {
	for _, marker := range unorderedMarkers {
		if strings.HasPrefix(lines[0], marker) {
			return allHavePrefix(lines, marker)
		}
	}
	return false
}

func isOrderedList(lines []string) bool {
	for i, line := range lines {
		if !strings.HasPrefix(line, orderedMarker(i+1)) {
			return false
		}
	}
	return true
}

// orderedMarker returns the list prefix for the n-th item, e.g. "3. ".
func orderedMarker(n int) string {
	return strconv.Itoa(n) + ". "
}
