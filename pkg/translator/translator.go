package translator

import (
	"embed"
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

const (
	LanguageEn = "en"
	LanguageZh = "zh"
)

const translationFolder = "translation"

//go:embed translation/*.toml
var translations embed.FS

// Translator localizes message ids into one language, falling back to English.
type Translator struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	lang      string
}

// New loads the embedded translation files and returns a translator for lang.
// Files that fail to parse are logged and skipped.
func New(lang string) *Translator {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := translations.ReadDir(translationFolder)
	if err != nil {
		zap.L().Error("failed to list translation folder", zap.String("folder", translationFolder), zap.Error(err))
	}
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		if _, err := bundle.LoadMessageFileFS(translations, path.Join(translationFolder, f.Name())); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", f.Name()), zap.Error(err))
		}
	}

	if lang == "" {
		lang = LanguageEn
	}
	return &Translator{
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, lang, LanguageEn),
		lang:      lang,
	}
}

func (t *Translator) Language() string {
	return t.lang
}

// T returns the message for id, or id itself when no translation exists.
func (t *Translator) T(id string) string {
	return t.TData(id, nil)
}

// TData is T with template data for messages that contain placeholders.
func (t *Translator) TData(id string, data any) string {
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", t.lang), zap.String("message_id", id), zap.Error(err))
		return id
	}
	return msg
}
