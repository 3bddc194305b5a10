package locale

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"github.com/nicksnyder/go-i18n/i18n"
	"github.com/thoas/go-funk"
)

// Supported languages
var Supported = []string{"en-US"}

//go:embed en-us.yaml
var enUS []byte

var translateFunction i18n.TranslateFunc

func init() {
	if err := i18n.ParseTranslationFileBytes("en-us.yaml", enUS); err != nil {
		panic(fmt.Sprintf("Could not parse embedded translations: %v", err))
	}
	if err := Set("en-US"); err != nil {
		panic(err)
	}
}

// Set the active language to the given locale
func Set(localeName string) error {
	if !funk.Contains(Supported, localeName) {
		return fmt.Errorf("Locale does not exist: %s", localeName)
	}

	tfunc, err := i18n.Tfunc(localeName)
	if err != nil {
		return fmt.Errorf("Could not load locale %s: %w", localeName, err)
	}
	translateFunction = tfunc
	return nil
}

// T aliases to i18n.Tfunc()
func T(translationID string, args ...interface{}) string {
	return translateFunction(translationID, args...)
}

// Tr is like T but it accepts string params that will be used as numbered params, eg. V0, V1, V2 etc
func Tr(translationID string, values ...string) string {
	return T(translationID, numberedValues(values))
}

// Tl is like Tr but falls back on the given locale string when the translation id is not known
func Tl(translationID, locale string, values ...string) string {
	translation := Tr(translationID, values...)
	if translation != translationID {
		return translation
	}

	translation = locale
	for i, value := range values {
		translation = strings.Replace(translation, "{{.V"+strconv.Itoa(i)+"}}", value, -1)
	}
	return translation
}

// Tt aliases to T, but before returning the string it replaces `[[` and `]]` with `{{` and `}}`,
// allowing for the localized strings to use these template tags without triggering i18n
func Tt(translationID string, args ...interface{}) string {
	translation := T(translationID, args...)
	translation = strings.Replace(translation, "[[", "{{", -1)
	translation = strings.Replace(translation, "]]", "}}", -1)

	// Linebreaks in templates are explicit, YAML folding makes them painful otherwise
	translation = strings.Replace(translation, "\n", "", -1)
	translation = strings.Replace(translation, "{{BR}}", "\n", -1)

	translation = strings.Trim(translation, " ")
	return translation
}

func numberedValues(values []string) map[string]interface{} {
	input := map[string]interface{}{}
	for k, v := range values {
		input["V"+fmt.Sprint(k)] = v
	}
	return input
}
