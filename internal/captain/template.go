package captain

import "github.com/ActiveState/launcher/internal/locale"

func usageTemplate() string {
	return locale.Tt("usage_tpl")
}
