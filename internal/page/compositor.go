// Package page composes the final document from the fixed template and
// writes it to the output directory.
package page

import (
	"fmt"
	"os"
	"strings"
)

// Placeholders is the complete set of tokens the compositor recognizes.
// Substitution is total for whichever of these appear in the template; a
// token the template does not contain is silently a no-op. The tokens do not
// nest or reference each other, so replacement order is not observable.
var Placeholders = []string{
	"{{PROJECT_TITLE}}",
	"{{PROJECT_DESCRIPTION}}",
	"{{TECH_STACK}}",
	"{{INSIGHT_CARDS}}",
	"{{PROJECT_SUMMARY}}",
	"{{KEY_INSIGHTS}}",
	"{{VISUALIZATIONS}}",
	"{{DASHBOARD_TITLE}}",
	"{{DASHBOARD_DESCRIPTION}}",
	"{{DASHBOARD_LINK}}",
	"{{TECHNICAL_IMPLEMENTATION}}",
	"{{BUSINESS_VALUE_TITLE}}",
	"{{BUSINESS_VALUE_ITEMS}}",
	"{{PROJECT_LINKS}}",
	"{{VISUALIZATION_DATA}}",
}

// Compose reads the template file and substitutes every recognized
// placeholder with its value from replacements. The template carries literal
// CSS/JS braces, so substitution is plain string replacement rather than a
// template engine; see the placeholder contract above.
func Compose(templatePath string, replacements map[string]string) (string, error) {
	raw, err := os.ReadFile(templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to read page template %s: %w", templatePath, err)
	}

	pairs := make([]string, 0, len(Placeholders)*2)
	for _, token := range Placeholders {
		pairs = append(pairs, token, replacements[token])
	}
	return strings.NewReplacer(pairs...).Replace(string(raw)), nil
}
