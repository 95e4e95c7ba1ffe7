package document

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tree() Document {
	link := "https://example.org"
	return Document{
		Title: "t",
		Body: []Node{
			Section{Key: SectionPersonal, Children: []Node{Text{Value: "Ada"}}},
			Row{Columns: []Column{
				{Children: []Node{
					Section{Key: SectionExperience, Children: []Node{
						Entry{Section: SectionExperience, ID: "a", Children: []Node{Text{Value: "one"}}},
						Entry{Section: SectionExperience, ID: "b", Children: []Node{Text{Value: "two", Link: &link}}},
					}},
				}},
				{Children: []Node{
					Section{Key: SectionSkills, Children: []Node{Text{Value: "Go"}, Rule{Thickness: 1}}},
				}},
			}},
		},
	}
}

func TestSectionsAndEntries(t *testing.T) {
	doc := tree()
	assert.Equal(t, []SectionKey{SectionPersonal, SectionExperience, SectionSkills}, Sections(doc))
	assert.Equal(t, []string{"a", "b"}, EntryIDs(doc, SectionExperience))
	assert.True(t, HasSection(doc, SectionSkills))
	assert.False(t, HasSection(doc, SectionLanguages))
	assert.Equal(t, []string{"Ada", "one", "two", "Go"}, Texts(doc.Body))
}

func TestMarshalJSON_AddsKind(t *testing.T) {
	raw, err := json.Marshal(tree())
	require.NoError(t, err)

	var decoded struct {
		Body []map[string]any `json:"body"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Len(t, decoded.Body, 2)
	assert.Equal(t, "section", decoded.Body[0]["kind"])
	assert.Equal(t, "row", decoded.Body[1]["kind"])

	cols := decoded.Body[1]["columns"].([]any)
	first := cols[0].(map[string]any)
	assert.Equal(t, "column", first["kind"])
}

func TestWalk_SkipChildren(t *testing.T) {
	var seen []Kind
	Walk(tree().Body, func(n Node) bool {
		seen = append(seen, n.Kind())
		return n.Kind() != KindRow
	})
	assert.Equal(t, []Kind{KindSection, KindText, KindRow}, seen)
}
