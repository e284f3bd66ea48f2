// Package service implements the chat pipeline: inventory prompt assembly,
// model invocation, and resolution of hidden add-to-cart commands.
package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"papergenius_backend/platform/apperr"
	"papergenius_backend/platform/logger"
)

// ChatUser identifies the requester. Guests chat with LoggedIn false.
type ChatUser struct {
	ID       int64
	Name     string
	LoggedIn bool
}

// Outcome classifies how a directive resolution ended.
type Outcome int

const (
	// OutcomeMatched means the cart entry was created.
	OutcomeMatched Outcome = iota
	// OutcomeItemNotFound means the directive named an unknown item.
	OutcomeItemNotFound
	// OutcomeYearUnresolved means a year endpoint matched no key.
	OutcomeYearUnresolved
	// OutcomePersistenceFailed means lookup, pricing, or the insert failed.
	OutcomePersistenceFailed
)

// resolution is the result of processing one directive.
type resolution struct {
	outcome  Outcome
	itemName string
	startKey string
	endKey   string
	rawStart string
	rawEnd   string
}

// Service runs the assistant chat pipeline.
type Service struct {
	catalog CatalogReader
	cart    CartWriter
	pricer  Pricer
	gen     Generator
	log     *logger.Logger
}

// New creates the assistant service. gen may be nil when no API key is
// configured; chat requests then fail with a configuration error.
func New(catalog CatalogReader, cart CartWriter, pricer Pricer, gen Generator, log *logger.Logger) *Service {
	return &Service{catalog: catalog, cart: cart, pricer: pricer, gen: gen, log: log}
}

// Chat answers a storefront message. When the reply carries an add-to-cart
// command and the user is signed in, the command is resolved against the
// catalog and materialized into the cart; the markup is always removed from
// the returned text and replaced with a system footer describing the result.
func (s *Service) Chat(ctx context.Context, user ChatUser, message string) (string, error) {
	if s.gen == nil {
		return "", apperr.Internal("AI API Key missing on server")
	}
	if strings.TrimSpace(message) == "" {
		return "", apperr.Validation("no message provided")
	}

	userName := user.Name
	if !user.LoggedIn || userName == "" {
		userName = "Guest"
	}

	inventoryContext, nameMap := s.loadInventory(ctx)
	instruction := BuildSystemInstruction(userName, user.LoggedIn, inventoryContext)

	reply, err := s.gen.Generate(ctx, instruction, message)
	if err != nil {
		s.log.Error("model generation failed", "error", err)
		return "", apperr.Internal("assistant is unavailable")
	}

	if !HasDirective(reply) {
		return reply, nil
	}
	if !user.LoggedIn {
		// Guests never get cart mutations; drop the markup silently.
		return StripDirective(reply), nil
	}

	directive, ok := ExtractDirective(reply)
	if !ok {
		s.log.Warn("malformed add-to-cart directive", "user_id", user.ID)
		return StripDirective(reply) + footerProcessingFailed, nil
	}

	res := s.resolveDirective(ctx, user.ID, directive, nameMap)
	return StripDirective(reply) + footerFor(res), nil
}

func (s *Service) loadInventory(ctx context.Context) (string, map[string]int64) {
	items, err := s.catalog.ListItems(ctx)
	if err != nil {
		s.log.DatabaseError("assistant.load_inventory", err)
		return inventoryOfflineContext, map[string]int64{}
	}
	return BuildInventoryContext(items)
}

// resolveDirective turns a parsed directive into a cart entry. Every failure
// mode maps to an outcome; raw errors are logged, never surfaced to the chat.
func (s *Service) resolveDirective(ctx context.Context, userID int64, directive Directive, nameMap map[string]int64) resolution {
	itemID, ok := nameMap[strings.ToLower(directive.ItemName)]
	if !ok {
		return resolution{outcome: OutcomeItemNotFound}
	}

	item, err := s.catalog.GetItem(ctx, itemID)
	if err != nil {
		s.log.DatabaseError("assistant.get_item", err)
		return resolution{outcome: OutcomePersistenceFailed}
	}

	keys := make([]string, 0, len(item.YearsAvailable))
	for key := range item.YearsAvailable {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	startKey := ResolveYearKey(directive.StartYear, keys)
	endKey := ResolveYearKey(directive.EndYear, keys)
	if startKey == "" || endKey == "" {
		s.log.Warn("year match failed",
			"keys", keys, "raw_start", directive.StartYear, "raw_end", directive.EndYear)
		return resolution{
			outcome:  OutcomeYearUnresolved,
			rawStart: directive.StartYear,
			rawEnd:   directive.EndYear,
		}
	}

	startIdx := indexOf(keys, startKey)
	endIdx := indexOf(keys, endKey)
	if startIdx > endIdx {
		startIdx, endIdx = endIdx, startIdx
	}
	selected := keys[startIdx : endIdx+1]

	price := s.pricer.Price(item.YearsAvailable, directive.CoverType, selected)

	err = s.cart.InsertEntry(ctx, CartInsert{
		UserID:         userID,
		OriginalItemID: item.ID,
		Name:           item.Name,
		Img:            item.Img,
		YearsAvailable: item.YearsAvailable,
		SelectedYears:  selected,
		DesignType:     directive.CoverType,
		Price:          price,
	})
	if err != nil {
		s.log.DatabaseError("assistant.insert_entry", err)
		return resolution{outcome: OutcomePersistenceFailed}
	}

	return resolution{
		outcome:  OutcomeMatched,
		itemName: item.Name,
		startKey: startKey,
		endKey:   endKey,
	}
}

const (
	footerProcessingFailed = "\n\n[SYSTEM ERROR]: Processing failed."
	footerItemNotFound     = "\n\n[SYSTEM ERROR]: Item not found."
)

func footerFor(res resolution) string {
	switch res.outcome {
	case OutcomeMatched:
		return fmt.Sprintf("\n\n[SYSTEM]: ✅ Added **%s** (%s - %s) to cart.", res.itemName, res.startKey, res.endKey)
	case OutcomeItemNotFound:
		return footerItemNotFound
	case OutcomeYearUnresolved:
		return fmt.Sprintf("\n\n[SYSTEM ERROR]: Could not match years '%s' or '%s' to database.", res.rawStart, res.rawEnd)
	default:
		return footerProcessingFailed
	}
}

func indexOf(keys []string, key string) int {
	for i, k := range keys {
		if k == key {
			return i
		}
	}
	return -1
}
