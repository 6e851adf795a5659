package conversation

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

const maxResults = 5

var (
	greetingKeywords = []string{"hi", "hello", "hey", "hola", "good morning", "good afternoon", "good evening"}
	farewellKeywords = []string{"bye", "goodbye", "see you", "thanks", "thank you", "cya"}

	fallbackCuisines  = []string{"Italian", "Chinese", "Indian"}
	fallbackLocations = []string{"downtown", "uptown", "midtown"}
)

const (
	greetingPrompt  = "Hi there! To get started, just say hello!"
	farewellMessage = "Thank you for chatting with me! I hope you found what you were looking for. Have a great meal and come back anytime!"
	cuisineRetry    = "I'm not sure about that cuisine. Could you please specify a type of cuisine you'd like to try? For example: Italian, Chinese, Indian, etc."
	locationRetry   = "I'm not sure about that location. Could you please specify an area or neighborhood?"
	refinePrompt    = `Would you like to try a different cuisine or location? You can also say "start over" for a new search.`
)

// Advance runs one turn of the slot-finder: it takes the persisted state
// and context, the incoming message, and returns their successors plus the
// reply to emit. It holds no state of its own, so callers can rebuild a
// session from any store between turns.
//
// Only catalog failures produce an error; they surface unchanged so the
// calling layer can report a collaborator problem. Unexpected faults are
// the caller's responsibility to absorb.
func Advance(ctx context.Context, cat Catalog, st State, c Context, message string) (State, Context, Reply, error) {
	msg := strings.ToLower(strings.TrimSpace(message))

	// Farewell wins from every state.
	if containsAny(msg, farewellKeywords) {
		return StateFarewell, Context{}, textReply(farewellMessage), nil
	}

	switch st {
	case StateGreeting:
		return advanceGreeting(ctx, cat, c, msg)
	case StateAskCuisine:
		return advanceAskCuisine(ctx, cat, c, msg)
	case StateAskLocation:
		return advanceAskLocation(ctx, cat, c, msg)
	case StateSearching:
		return advanceSearching(ctx, cat, c, msg)
	case StateFarewell:
		// Terminal for the conversation; restarting is the session owner's
		// concern, so keep emitting the closing message.
		return StateFarewell, Context{}, textReply(farewellMessage), nil
	default:
		return StateGreeting, Context{}, textReply(greetingPrompt), nil
	}
}

func advanceGreeting(ctx context.Context, cat Catalog, c Context, msg string) (State, Context, Reply, error) {
	if !containsAny(msg, greetingKeywords) {
		return StateGreeting, c, textReply(greetingPrompt), nil
	}

	cuisines, err := cat.Cuisines(ctx)
	if err != nil {
		return StateGreeting, c, Reply{}, err
	}
	options := topTags(cuisines, 5, fallbackCuisines)
	prompt := fmt.Sprintf(
		"Hello! I'm your restaurant guide. What type of cuisine are you in the mood for today? Some popular options are %s, but feel free to ask for any cuisine you like!",
		strings.Join(options, ", "),
	)
	return StateAskCuisine, c, textReply(prompt), nil
}

func advanceAskCuisine(ctx context.Context, cat Catalog, c Context, msg string) (State, Context, Reply, error) {
	cuisines, err := cat.Cuisines(ctx)
	if err != nil {
		return StateAskCuisine, c, Reply{}, err
	}

	cuisine := matchTag(cuisines, msg)
	if cuisine == "" {
		return StateAskCuisine, c, textReply(cuisineRetry), nil
	}
	c.Cuisine = cuisine

	locations, err := cat.Locations(ctx)
	if err != nil {
		return StateAskCuisine, c, Reply{}, err
	}
	options := topTags(locations, 3, fallbackLocations)
	prompt := fmt.Sprintf(
		"Great choice! Which area would you like to find %s restaurants in? Some areas I know are %s.",
		cuisine, strings.Join(options, ", "),
	)
	return StateAskLocation, c, textReply(prompt), nil
}

func advanceAskLocation(ctx context.Context, cat Catalog, c Context, msg string) (State, Context, Reply, error) {
	locations, err := cat.Locations(ctx)
	if err != nil {
		return StateAskLocation, c, Reply{}, err
	}

	location := matchTag(locations, msg)
	if location == "" {
		return StateAskLocation, c, textReply(locationRetry), nil
	}
	c.Location = location

	return search(ctx, cat, c)
}

func advanceSearching(ctx context.Context, cat Catalog, c Context, msg string) (State, Context, Reply, error) {
	if strings.Contains(msg, "start over") || strings.Contains(msg, "new search") {
		return StateGreeting, Context{}, textReply(greetingPrompt), nil
	}

	cuisines, err := cat.Cuisines(ctx)
	if err != nil {
		return StateSearching, c, Reply{}, err
	}
	locations, err := cat.Locations(ctx)
	if err != nil {
		return StateSearching, c, Reply{}, err
	}

	// Either half of the query may be refined independently.
	refined := false
	if cuisine := matchTag(cuisines, msg); cuisine != "" {
		c.Cuisine = cuisine
		refined = true
	}
	if location := matchTag(locations, msg); location != "" {
		c.Location = location
		refined = true
	}

	if !refined {
		return StateSearching, c, textReply(refinePrompt), nil
	}
	return search(ctx, cat, c)
}

// search runs the catalog query for the accumulated context. An empty
// result bounces the session back to AskCuisine; the context is kept so the
// next turn can reuse whichever half of the query still makes sense.
func search(ctx context.Context, cat Catalog, c Context) (State, Context, Reply, error) {
	hits, err := cat.Search(ctx, c.Cuisine, c.Location)
	if err != nil {
		return StateSearching, c, Reply{}, err
	}

	if len(hits) == 0 {
		msg := fmt.Sprintf(
			"I couldn't find any %s restaurants in %s. Would you like to try a different cuisine or location?",
			c.Cuisine, c.Location,
		)
		return StateAskCuisine, c, textReply(msg), nil
	}

	if len(hits) > maxResults {
		hits = hits[:maxResults]
	}
	msg := fmt.Sprintf(
		"I found some great %s restaurants in %s! Would you like to see more options or try a different cuisine/location?",
		c.Cuisine, c.Location,
	)
	return StateSearching, c, Reply{Kind: ReplyVenues, Message: msg, Venues: hits}, nil
}

// matchTag finds a known tag appearing as a case-insensitive substring of
// the message. Candidates are tried longest first, ties broken
// lexicographically, so "south indian" beats "indian" and the winner does
// not depend on catalog iteration order.
func matchTag(tags []string, msg string) string {
	ordered := make([]string, len(tags))
	copy(ordered, tags)
	sort.Slice(ordered, func(i, j int) bool {
		if len(ordered[i]) != len(ordered[j]) {
			return len(ordered[i]) > len(ordered[j])
		}
		return ordered[i] < ordered[j]
	})

	for _, tag := range ordered {
		if tag == "" {
			continue
		}
		if strings.Contains(msg, strings.ToLower(tag)) {
			return tag
		}
	}
	return ""
}

func topTags(tags []string, limit int, fallback []string) []string {
	if len(tags) == 0 {
		return fallback
	}
	ordered := make([]string, len(tags))
	copy(ordered, tags)
	sort.Strings(ordered)
	if len(ordered) > limit {
		ordered = ordered[:limit]
	}
	return ordered
}

func containsAny(msg string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(msg, kw) {
			return true
		}
	}
	return false
}
