package report

import (
	"regexp"
	"sort"
	"strings"
)

var (
	personaBlockPattern   = regexp.MustCompile(`(?s)\[PERSONA_START\](.*?)\[PERSONA_END\]`)
	// The trailing matchers stay on the heading line so a bold name on
	// the next line keeps its ** opener after the split.
	personaHeadingPattern = regexp.MustCompile(`(?im)^\**[ \t]*Persona\s+\d+[ \t]*:?[ \t]*\**`)
	basicInfoPattern      = regexp.MustCompile(`(?im)^\s*-?\s*\**Basic Information\**\s*:?\s*(.+)$`)
	backgroundCtxPattern  = regexp.MustCompile(`(?im)^\s*-?\s*\**Background and Context\**\s*:?\s*(.+)$`)
	backgroundPattern     = regexp.MustCompile(`(?im)^\s*-?\s*\**(?:Background|Context)\**\s*:?\s*(.+)$`)
	boldPhrasePattern     = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	parentheticalPattern  = regexp.MustCompile(`\s*\([^)]*\)`)
)

// ExtractPersonas parses the personas document into a map keyed by
// lower-cased name. Two strategies are tried in order, first match wins
// globally: explicit [PERSONA_START]/[PERSONA_END] blocks, then numbered
// "Persona N:" headings. Sections yielding no name are dropped silently;
// malformed input produces an empty map, never an error.
func ExtractPersonas(personasText string) PersonaMap {
	personas := PersonaMap{}
	if strings.TrimSpace(personasText) == "" {
		return personas
	}

	blocks := personaBlockPattern.FindAllStringSubmatch(personasText, -1)
	if len(blocks) > 0 {
		for _, m := range blocks {
			if p, ok := parseDelimitedPersona(m[1]); ok {
				personas[strings.ToLower(p.Name)] = p
			}
		}
		return personas
	}

	sections := personaHeadingPattern.Split(personasText, -1)
	if len(sections) > 1 {
		for _, section := range sections[1:] {
			if p, ok := parseHeadingPersona(section); ok {
				personas[strings.ToLower(p.Name)] = p
			}
		}
	}
	return personas
}

// parseDelimitedPersona reads one [PERSONA_START] block. The header line
// carries the name (audience-type parentheticals stripped); the Basic
// Information line refines it to name, age, role.
func parseDelimitedPersona(block string) (Persona, bool) {
	p := Persona{}
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		p.Name = cleanPersonaName(line)
		break
	}

	if m := basicInfoPattern.FindStringSubmatch(block); m != nil {
		applyBasicInfo(&p, m[1])
	}
	if m := backgroundCtxPattern.FindStringSubmatch(block); m != nil {
		p.Description = strings.TrimSpace(m[1])
	}

	if strings.TrimSpace(p.Name) == "" {
		return Persona{}, false
	}
	return p, true
}

// parseHeadingPersona reads one "Persona N:" section. The name comes from
// the Basic Information line when present, otherwise from the first
// bold-emphasized phrase.
func parseHeadingPersona(section string) (Persona, bool) {
	p := Persona{}
	if m := basicInfoPattern.FindStringSubmatch(section); m != nil {
		applyBasicInfo(&p, m[1])
	}
	if strings.TrimSpace(p.Name) == "" {
		if m := boldPhrasePattern.FindStringSubmatch(section); m != nil {
			p.Name = cleanPersonaName(m[1])
		}
	}
	if m := backgroundCtxPattern.FindStringSubmatch(section); m != nil {
		p.Description = strings.TrimSpace(m[1])
	} else if m := backgroundPattern.FindStringSubmatch(section); m != nil {
		p.Description = strings.TrimSpace(m[1])
	}

	if strings.TrimSpace(p.Name) == "" {
		return Persona{}, false
	}
	return p, true
}

// applyBasicInfo fills name/age/role from a comma-separated
// "Name, Age, Role" value. Missing trailing fields are tolerated.
func applyBasicInfo(p *Persona, value string) {
	parts := strings.Split(value, ",")
	if len(parts) > 0 {
		if name := cleanPersonaName(parts[0]); name != "" {
			p.Name = name
		}
	}
	if len(parts) > 1 {
		p.Age = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		p.Role = strings.TrimSpace(strings.Join(parts[2:], ","))
	}
}

func cleanPersonaName(raw string) string {
	name := parentheticalPattern.ReplaceAllString(raw, "")
	name = strings.Trim(name, "*-: \t")
	return strings.TrimSpace(name)
}

// PersonaSummaries is the side-channel projection over the personas
// document: one "name — role" line per discovered persona, usable before
// the full assembly pass.
func PersonaSummaries(personasText string) []string {
	personas := ExtractPersonas(personasText)
	summaries := make([]string, 0, len(personas))
	for _, p := range personas {
		if strings.TrimSpace(p.Role) != "" {
			summaries = append(summaries, p.Name+" — "+p.Role)
		} else {
			summaries = append(summaries, p.Name)
		}
	}
	sort.Strings(summaries)
	return summaries
}
