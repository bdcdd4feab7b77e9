package assemble

import "strings"

// positiveOrder is the fixed category precedence for the positive prompt:
// framing first, then subjects, environment, objects, ambiance, era, style,
// pass-through text, actions, refinements last.
var positiveOrder = []Category{
	CategoryShot,
	CategoryCharacter,
	CategoryOutfit,
	CategorySetting,
	CategoryProp,
	CategoryExtras,
	CategoryTimePeriod,
	CategoryStyle,
	CategoryText,
	CategoryAction,
	CategoryEdit,
}

// Compose orders fragments by category precedence and joins them into the
// positive and negative strings. Within one category, fragments keep their
// traversal order. The shot section prefixes the rest with ": "; everything
// else joins with ", ".
func Compose(fragments []Fragment) (prompt, negative string) {
	byCategory := make(map[Category][]string)
	for _, f := range fragments {
		if f.Text == "" {
			continue
		}
		byCategory[f.Category] = append(byCategory[f.Category], f.Text)
	}

	var body []string
	for _, c := range positiveOrder {
		if c == CategoryShot {
			continue
		}
		body = append(body, byCategory[c]...)
	}

	shot := strings.Join(byCategory[CategoryShot], ", ")
	rest := strings.Join(body, ", ")
	switch {
	case shot != "" && rest != "":
		prompt = shot + ": " + rest
	case shot != "":
		prompt = shot
	default:
		prompt = rest
	}

	negative = strings.Join(byCategory[CategoryNegative], ", ")
	return prompt, negative
}
