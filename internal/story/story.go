// Package story holds the static storybook dataset: chapters, hotspot
// geometry, and per-character dialogue templates.
package story

import (
	"regexp"
	"strings"
)

// Character identifies one of the story's actors.
type Character string

const (
	Police     Character = "police"
	Fire       Character = "fire"
	Ambulance  Character = "ambulance"
	Helicopter Character = "helicopter"
	Plane      Character = "plane"
	Tow        Character = "tow"
)

// ParseCharacter maps an external string to a known Character.
func ParseCharacter(s string) (Character, bool) {
	switch Character(strings.ToLower(strings.TrimSpace(s))) {
	case Police, Fire, Ambulance, Helicopter, Plane, Tow:
		return Character(strings.ToLower(strings.TrimSpace(s))), true
	}
	return "", false
}

// Chapter is one unit of story content.
type Chapter struct {
	ID      int
	Title   string
	Content string
}

// Hotspot is a clickable region on a chapter illustration. Coordinates and
// sizes are percentages of the rendered image.
type Hotspot struct {
	ID          string
	X           float64
	Y           float64
	Width       float64
	Height      float64
	Character   Character
	SoundEffect string
}

// Repository is the read-only view of the story dataset. The generation
// pipeline depends on this interface so tests can drive it with fixtures.
type Repository interface {
	Chapter(id int) (Chapter, bool)
	TotalChapters() int
	HotspotsForChapter(id int) []Hotspot
	DialogueTemplate(chapterID int, character Character) (string, bool)
	ChapterDialogues(chapterID int) map[Character]string
}

const (
	// NamePlaceholder is the substitution marker used in dialogue templates.
	NamePlaceholder = "{childName}"

	// FallbackAddress is spoken instead of a name when none was provided
	// ("friend" in Ukrainian).
	FallbackAddress = "друже"
)

// RenderDialogue substitutes every name placeholder in a dialogue template
// with the child's name, or with FallbackAddress when the name is empty.
func RenderDialogue(template, childName string) string {
	name := strings.TrimSpace(childName)
	if name == "" {
		name = FallbackAddress
	}
	return strings.ReplaceAll(template, NamePlaceholder, name)
}

var fireTruckPattern = regexp.MustCompile(`(?i)пожежна машинка`)

// PersonalizeContent weaves the child's name into chapter text by replacing
// every third mention of the fire truck. Deterministic so that narration for
// the same name always produces the same text.
func PersonalizeContent(content, childName string) string {
	name := strings.TrimSpace(childName)
	if name == "" {
		return content
	}
	n := 0
	return fireTruckPattern.ReplaceAllStringFunc(content, func(match string) string {
		n++
		if n%3 == 1 {
			return name
		}
		return match
	})
}

// BookRepository serves the built-in storybook dataset.
type BookRepository struct {
	chapters  []Chapter
	hotspots  map[int][]Hotspot
	dialogues map[int]map[Character]string
}

// NewBookRepository returns a Repository backed by the built-in story.
func NewBookRepository() *BookRepository {
	return &BookRepository{
		chapters:  bookChapters,
		hotspots:  bookHotspots,
		dialogues: bookDialogues,
	}
}

// Chapter returns the chapter with the given id.
func (r *BookRepository) Chapter(id int) (Chapter, bool) {
	for _, ch := range r.chapters {
		if ch.ID == id {
			return ch, true
		}
	}
	return Chapter{}, false
}

// TotalChapters reports how many chapters the book has.
func (r *BookRepository) TotalChapters() int {
	return len(r.chapters)
}

// HotspotsForChapter returns the hotspots of a chapter, or an empty slice.
func (r *BookRepository) HotspotsForChapter(id int) []Hotspot {
	return r.hotspots[id]
}

// DialogueTemplate returns the raw dialogue template for a chapter/character
// pair, before name substitution.
func (r *BookRepository) DialogueTemplate(chapterID int, character Character) (string, bool) {
	chapter, ok := r.dialogues[chapterID]
	if !ok {
		return "", false
	}
	template, ok := chapter[character]
	return template, ok
}

// ChapterDialogues returns every dialogue template of a chapter keyed by
// character, for background pre-generation.
func (r *BookRepository) ChapterDialogues(chapterID int) map[Character]string {
	out := make(map[Character]string, len(r.dialogues[chapterID]))
	for character, template := range r.dialogues[chapterID] {
		out[character] = template
	}
	return out
}
