package translate

import (
	"sort"
	"text/template"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// LanguageBundle holds every message loaded for one language. It is built
// by the loader and never modified afterwards.
type LanguageBundle struct {
	name      string
	tag       language.Tag
	pluralTag language.Tag
	bundle    *i18n.Bundle
	entries   map[string]entry
	funcs     template.FuncMap
}

type entry struct {
	message *i18n.Message
	file    string
}

// otherOnlyTag has a single plural form, "other". It stands in for
// languages go-i18n has no plural rule for.
var otherOnlyTag = language.Japanese

func newLanguageBundle(name string, tag language.Tag) *LanguageBundle {
	pluralTag := tag
	if !hasPluralRule(tag) {
		pluralTag = otherOnlyTag
	}
	return &LanguageBundle{
		name:      name,
		tag:       tag,
		pluralTag: pluralTag,
		bundle:    i18n.NewBundle(pluralTag),
		entries:   make(map[string]entry),
	}
}

// hasPluralRule reports whether go-i18n knows the plural rule of tag.
// Adding no messages only performs the rule lookup.
func hasPluralRule(tag language.Tag) bool {
	return i18n.NewBundle(tag).AddMessages(tag) == nil
}

// Name returns the directory name the bundle was loaded from.
func (b *LanguageBundle) Name() string {
	return b.name
}

// Tag returns the parsed language tag.
func (b *LanguageBundle) Tag() language.Tag {
	return b.tag
}

// PluralTag returns the tag whose plural rule selects message forms. It
// differs from Tag only for languages without a known plural rule, which
// always use the "other" form.
func (b *LanguageBundle) PluralTag() language.Tag {
	return b.pluralTag
}

// Message returns the message with the given id, or nil.
func (b *LanguageBundle) Message(id string) *i18n.Message {
	e, ok := b.entries[id]
	if !ok {
		return nil
	}
	return e.message
}

// MessageIDs returns the ids of all messages in the bundle, sorted.
func (b *LanguageBundle) MessageIDs() []string {
	ids := make([]string, 0, len(b.entries))
	for id := range b.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of messages in the bundle.
func (b *LanguageBundle) Len() int {
	return len(b.entries)
}

// add merges the messages of one parsed file. A message id that another
// file already defined is rejected and nothing from file is added.
func (b *LanguageBundle) add(file string, messages []*i18n.Message) error {
	seen := make(map[string]struct{}, len(messages))
	for _, msg := range messages {
		if prev, ok := b.entries[msg.ID]; ok {
			return newError(NameBundle, nil,
				"could not add data from file %s to bundle: message %q already defined in %s", file, msg.ID, prev.file)
		}
		if _, ok := seen[msg.ID]; ok {
			return newError(NameBundle, nil,
				"could not add data from file %s to bundle: message %q defined twice", file, msg.ID)
		}
		seen[msg.ID] = struct{}{}
	}

	if err := b.bundle.AddMessages(b.pluralTag, messages...); err != nil {
		return newError(NameBundle, err, "could not add data from file %s to bundle", file)
	}
	for _, msg := range messages {
		b.entries[msg.ID] = entry{message: msg, file: file}
	}
	return nil
}
