package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/blogem/editpilot/models"
)

const editPromptTemplate = `You are a content editing assistant for a website builder.
You receive a DICTIONARY of editable text slots{{if .HasImageSlots}} and a list of IMAGE SLOTS{{end}}, followed by an INSTRUCTION from the site owner.

Return ONLY a JSON array. No prose, no markdown, no explanations.
Each element describes one change to one slot:
{"id": "<slot id>", "path": "<slot path>", ...changes}

Rules:
- Copy "id" and "path" exactly from the slot you change. If you only know one of them, send that one.
- Only include slots that actually change. Return [] when nothing should change.
{{- if .Caps.Text}}
- To change text use "newText" (string). Keep "field" and "itemIndex" from the slot when present. Preserve existing HTML markup and the language of the original text unless told otherwise.
{{- end}}
{{- if .Caps.URL}}
- To change a link use "newUrl" (string) or "newLink": {"url": "...", "isExternal": true|false, "nofollow": true|false}.
{{- end}}
{{- if .Caps.Image}}
- To change an image use "newImageUrl" (string), "newAttachmentId" (number) or "newImage": {"url": "...", "id": <number>}. Only change slots listed under IMAGE SLOTS.
{{- end}}
- Allowed change kinds: {{.CapabilityList}}. Never use any other key.
- Never invent ids or paths.

DICTIONARY:
{{.Dictionary}}
{{- if .HasImageSlots}}

IMAGE SLOTS:
{{.ImageSlots}}
{{- end}}

INSTRUCTION:
{{.Instruction}}
`

const kitPromptTemplate = `You are a design system assistant for a website builder.
You receive the current KIT SETTINGS of a site (system colors and system typography), followed by an INSTRUCTION from the site owner.

Return ONLY a JSON object. No prose, no markdown, no explanations.
The object may contain these keys:
{
  "colors": [{"_id": "<existing or new id>", "title": "<name>", "value": "<css color>"}],
  "typography": [{"_id": "<existing or new id>", "title": "<name>", "typography_font_family": "...", "typography_font_weight": "...", "typography_font_size": {"unit": "px", "size": 16}}]
}

Rules:
- Only include entries that change. Reuse the "_id" of an existing entry to change it.
- Every color needs a non-empty "value" such as "#1A2B3C" or "rgba(0,0,0,0.5)".
- Every typography entry needs at least one key starting with "typography_". Use no other keys besides "_id" and "title".
- Return {} when nothing should change.

KIT SETTINGS:
{{.KitSettings}}

INSTRUCTION:
{{.Instruction}}
`

var (
	editPrompt = template.Must(template.New("edit_prompt").Parse(editPromptTemplate))
	kitPrompt  = template.Must(template.New("kit_prompt").Parse(kitPromptTemplate))
)

type editPromptData struct {
	Caps           CapabilitySet
	CapabilityList string
	HasImageSlots  bool
	Dictionary     string
	ImageSlots     string
	Instruction    string
}

type kitPromptData struct {
	KitSettings string
	Instruction string
}

// CompileEditPrompt renders the content edit prompt for the given context and instruction
func CompileEditPrompt(dictionary []models.DictionaryEntry, instruction string, slots []models.ImageSlot, capabilities []models.Capability) (string, error) {
	if dictionary == nil {
		dictionary = []models.DictionaryEntry{}
	}

	dict, err := json.MarshalIndent(dictionary, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize dictionary: %w", err)
	}

	caps := NewCapabilitySet(capabilities)
	names := make([]string, 0, 3)
	for _, c := range caps.List() {
		names = append(names, string(c))
	}
	capList := strings.Join(names, ", ")
	if capList == "" {
		capList = "none"
	}

	data := editPromptData{
		Caps:           caps,
		CapabilityList: capList,
		HasImageSlots:  len(slots) > 0,
		Dictionary:     string(dict),
		Instruction:    strings.TrimSpace(instruction),
	}

	if data.HasImageSlots {
		rendered, err := json.MarshalIndent(slots, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to serialize image slots: %w", err)
		}
		data.ImageSlots = string(rendered)
	}

	return render(editPrompt, data)
}

// CompileKitPrompt renders the kit edit prompt for the given settings and instruction
func CompileKitPrompt(kitSettings json.RawMessage, instruction string) (string, error) {
	settings := "{}"
	if len(bytes.TrimSpace(kitSettings)) > 0 {
		var buf bytes.Buffer
		if err := json.Indent(&buf, kitSettings, "", "  "); err != nil {
			return "", fmt.Errorf("failed to serialize kit settings: %w", err)
		}
		settings = buf.String()
	}

	return render(kitPrompt, kitPromptData{
		KitSettings: settings,
		Instruction: strings.TrimSpace(instruction),
	})
}

func render(tmpl *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}
