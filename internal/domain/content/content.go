// Package content models the append-only history of AI-generated marketing
// material and the generation modes a tenant can request.
package content

import (
	"fmt"
	"time"

	"chefviral/internal/shared/id"
)

// Mode determines the prompt shape and output cardinality of one
// generation request.
type Mode string

const (
	ModeWeeklyPack    Mode = "WEEKLY_PACK"
	ModeDailyOffer    Mode = "DAILY_OFFER"
	ModeCustomerReply Mode = "CUSTOMER_REPLY"
)

// ValidModes enumerates the known generation modes.
var ValidModes = map[Mode]bool{
	ModeWeeklyPack:    true,
	ModeDailyOffer:    true,
	ModeCustomerReply: true,
}

// IsValid reports whether m is a known mode.
func (m Mode) IsValid() bool {
	return ValidModes[m]
}

// Kind is the destination channel of one generated item.
type Kind string

const (
	KindFeed     Kind = "FEED"
	KindStory    Kind = "STORY"
	KindReels    Kind = "REELS"
	KindWhatsApp Kind = "WHATSAPP"
	KindReply    Kind = "REPLY"
)

// ValidKinds enumerates the known content kinds.
var ValidKinds = map[Kind]bool{
	KindFeed:     true,
	KindStory:    true,
	KindReels:    true,
	KindWhatsApp: true,
	KindReply:    true,
}

// IsValid reports whether k is a known kind.
func (k Kind) IsValid() bool {
	return ValidKinds[k]
}

// WantsImage reports whether items of this kind carry a generated
// illustration. Plain-text replies never do.
func (k Kind) WantsImage() bool {
	return k != KindReply
}

// AspectRatio returns the illustration aspect ratio for this kind: square
// for feed content, 9:16 portrait for stories and reels.
func (k Kind) AspectRatio() string {
	if k == KindStory || k == KindReels {
		return "9:16"
	}
	return "1:1"
}

// GeneratedContent is one item of the tenant's generation history.
type GeneratedContent struct {
	dbID         uint
	sid          string
	userID       uint
	runSID       string // shared by all items of one generation run
	kind         Kind
	hook         string
	caption      string
	cta          string
	hashtags     []string
	script       string
	visualPrompt string
	image        string // base64 PNG payload, empty when image generation failed or was skipped
	createdAt    time.Time
}

// NewRunSID mints the identifier shared by all items of one run.
func NewRunSID() string {
	return id.MustGenerateWithPrefix(id.PrefixRun, id.DefaultLength)
}

// NewGeneratedContent creates a history item from a generator result.
func NewGeneratedContent(userID uint, runSID string, kind Kind, hook, caption, cta string, hashtags []string) (*GeneratedContent, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if runSID == "" {
		return nil, fmt.Errorf("run SID is required")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid content kind: %s", kind)
	}
	if caption == "" {
		return nil, fmt.Errorf("caption is required")
	}
	if hashtags == nil {
		hashtags = []string{}
	}
	return &GeneratedContent{
		sid:       id.MustGenerateWithPrefix(id.PrefixContent, id.DefaultLength),
		userID:    userID,
		runSID:    runSID,
		kind:      kind,
		hook:      hook,
		caption:   caption,
		cta:       cta,
		hashtags:  hashtags,
		createdAt: time.Now().UTC(),
	}, nil
}

// ReconstructGeneratedContent rebuilds an item from persistence.
func ReconstructGeneratedContent(
	dbID uint,
	sid string,
	userID uint,
	runSID string,
	kind Kind,
	hook, caption, cta string,
	hashtags []string,
	script, visualPrompt, image string,
	createdAt time.Time,
) (*GeneratedContent, error) {
	if dbID == 0 {
		return nil, fmt.Errorf("content ID cannot be zero")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid content kind: %s", kind)
	}
	if hashtags == nil {
		hashtags = []string{}
	}
	return &GeneratedContent{
		dbID:         dbID,
		sid:          sid,
		userID:       userID,
		runSID:       runSID,
		kind:         kind,
		hook:         hook,
		caption:      caption,
		cta:          cta,
		hashtags:     hashtags,
		script:       script,
		visualPrompt: visualPrompt,
		image:        image,
		createdAt:    createdAt,
	}, nil
}

func (g *GeneratedContent) DBID() uint           { return g.dbID }
func (g *GeneratedContent) SID() string          { return g.sid }
func (g *GeneratedContent) UserID() uint         { return g.userID }
func (g *GeneratedContent) RunSID() string       { return g.runSID }
func (g *GeneratedContent) Kind() Kind           { return g.kind }
func (g *GeneratedContent) Hook() string         { return g.hook }
func (g *GeneratedContent) Caption() string      { return g.caption }
func (g *GeneratedContent) CTA() string          { return g.cta }
func (g *GeneratedContent) Hashtags() []string   { return g.hashtags }
func (g *GeneratedContent) Script() string       { return g.script }
func (g *GeneratedContent) VisualPrompt() string { return g.visualPrompt }
func (g *GeneratedContent) Image() string        { return g.image }
func (g *GeneratedContent) CreatedAt() time.Time { return g.createdAt }

// SetDBID records the database identity after the first insert.
func (g *GeneratedContent) SetDBID(dbID uint) {
	if g.dbID == 0 {
		g.dbID = dbID
	}
}

// WithScript attaches the reels script text.
func (g *GeneratedContent) WithScript(script string) *GeneratedContent {
	g.script = script
	return g
}

// WithVisualPrompt attaches the illustration description ("suggestion").
func (g *GeneratedContent) WithVisualPrompt(prompt string) *GeneratedContent {
	g.visualPrompt = prompt
	return g
}

// AttachImage stores the generated illustration payload. Image failures
// never drop the surrounding item, so this is always optional.
func (g *GeneratedContent) AttachImage(base64PNG string) {
	g.image = base64PNG
}

// HasImage reports whether an illustration was generated for this item.
func (g *GeneratedContent) HasImage() bool {
	return g.image != ""
}
