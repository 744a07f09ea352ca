package mcp

import (
	"context"
	"net/url"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterTools adds all facade tools to the MCP server. Every tool is a
// thin proxy: it forwards the call as an HTTP GET to the facade and
// returns the response envelope verbatim, so the model sees the same
// status/suggestions contract as any other client.
func RegisterTools(s *server.MCPServer) {
	s.AddTool(cardsTool(), handleCards)
	s.AddTool(cardByIDTool(), handleCardByID)
	s.AddTool(cardPriceTool(), handleCardPrice)
	s.AddTool(setsTool(), handleSets)
	s.AddTool(setByIDTool(), handleSetByID)
	s.AddTool(catalogTool("get_pokemon_types", "List every Pokemon card energy type (Fire, Water, Psychic, ...)."), handleCatalog("/types"))
	s.AddTool(catalogTool("get_pokemon_supertypes", "List every card supertype (Pokemon, Trainer, Energy)."), handleCatalog("/supertypes"))
	s.AddTool(catalogTool("get_pokemon_subtypes", "List every card subtype (Basic, Stage 1, EX, VMAX, ...)."), handleCatalog("/subtypes"))
	s.AddTool(catalogTool("get_pokemon_rarities", "List every card rarity (Common, Rare Holo, Rare Secret, ...)."), handleCatalog("/rarities"))
}

// --- Tool definitions ---

func cardsTool() mcp.Tool {
	return mcp.NewTool("get_pokemon_cards",
		mcp.WithDescription("Search Pokemon TCG cards. All filters are optional and combine with AND. "+
			"If a filter value is misspelled the response includes a 'suggestions' object with the closest known value."),
		mcp.WithString("name", mcp.Description("Card name, e.g. 'Charizard'")),
		mcp.WithString("set", mcp.Description("Set name, e.g. 'Base'")),
		mcp.WithString("type", mcp.Description("Energy type, e.g. 'Fire'")),
		mcp.WithString("rarity", mcp.Description("Rarity, e.g. 'Rare Holo'")),
		mcp.WithString("supertype", mcp.Description("Supertype: Pokemon, Trainer or Energy")),
		mcp.WithString("subtype", mcp.Description("Subtype, e.g. 'Basic' or 'VMAX'")),
		mcp.WithNumber("page", mcp.Description("Page number, starting at 1")),
		mcp.WithNumber("limit", mcp.Description("Results per page, default 20")),
	)
}

func cardByIDTool() mcp.Tool {
	return mcp.NewTool("get_pokemon_card_by_id",
		mcp.WithDescription("Fetch a single Pokemon card by its unique id, e.g. 'base1-4'."),
		mcp.WithString("card_id", mcp.Required(), mcp.Description("Card id, e.g. 'base1-4'")),
	)
}

func cardPriceTool() mcp.Tool {
	return mcp.NewTool("get_pokemon_card_price",
		mcp.WithDescription("Look up current TCGPlayer prices for a card by exact name. "+
			"Returns one price per printing variant (holofoil, normal, ...), preferring market price."),
		mcp.WithString("card_name", mcp.Required(), mcp.Description("Exact card name, e.g. 'Charizard'")),
	)
}

func setsTool() mcp.Tool {
	return mcp.NewTool("get_pokemon_sets",
		mcp.WithDescription("List Pokemon TCG sets, optionally filtered by name."),
		mcp.WithString("name", mcp.Description("Set name, e.g. 'Jungle'")),
		mcp.WithNumber("page", mcp.Description("Page number, starting at 1")),
		mcp.WithNumber("limit", mcp.Description("Results per page, default 20")),
	)
}

func setByIDTool() mcp.Tool {
	return mcp.NewTool("get_pokemon_set_by_id",
		mcp.WithDescription("Fetch a single Pokemon TCG set by its id, e.g. 'base1'."),
		mcp.WithString("set_id", mcp.Required(), mcp.Description("Set id, e.g. 'base1'")),
	)
}

func catalogTool(name, description string) mcp.Tool {
	return mcp.NewTool(name, mcp.WithDescription(description))
}

// --- Tool handlers ---

func handleCards(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := url.Values{}
	for _, key := range []string{"name", "set", "type", "rarity", "supertype", "subtype"} {
		if v := request.GetString(key, ""); v != "" {
			params.Set(key, v)
		}
	}
	addPagination(params, request)

	body, err := fetch(ctx, "/cards", params)
	if err != nil {
		return mcp.NewToolResultErrorf("Facade request failed: %v", err), nil
	}
	return mcp.NewToolResultText(body), nil
}

func handleCardByID(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cardID := request.GetString("card_id", "")
	if cardID == "" {
		return mcp.NewToolResultError("card_id is required"), nil
	}

	body, err := fetch(ctx, "/cards/"+url.PathEscape(cardID), nil)
	if err != nil {
		return mcp.NewToolResultErrorf("Facade request failed: %v", err), nil
	}
	return mcp.NewToolResultText(body), nil
}

func handleCardPrice(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cardName := request.GetString("card_name", "")
	if cardName == "" {
		return mcp.NewToolResultError("card_name is required"), nil
	}

	params := url.Values{}
	params.Set("card_name", cardName)

	body, err := fetch(ctx, "/card_price", params)
	if err != nil {
		return mcp.NewToolResultErrorf("Facade request failed: %v", err), nil
	}
	return mcp.NewToolResultText(body), nil
}

func handleSets(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := url.Values{}
	if v := request.GetString("name", ""); v != "" {
		params.Set("name", v)
	}
	addPagination(params, request)

	body, err := fetch(ctx, "/sets", params)
	if err != nil {
		return mcp.NewToolResultErrorf("Facade request failed: %v", err), nil
	}
	return mcp.NewToolResultText(body), nil
}

func handleSetByID(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	setID := request.GetString("set_id", "")
	if setID == "" {
		return mcp.NewToolResultError("set_id is required"), nil
	}

	body, err := fetch(ctx, "/sets/"+url.PathEscape(setID), nil)
	if err != nil {
		return mcp.NewToolResultErrorf("Facade request failed: %v", err), nil
	}
	return mcp.NewToolResultText(body), nil
}

func handleCatalog(path string) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		body, err := fetch(ctx, path, nil)
		if err != nil {
			return mcp.NewToolResultErrorf("Facade request failed: %v", err), nil
		}
		return mcp.NewToolResultText(body), nil
	}
}

func addPagination(params url.Values, request mcp.CallToolRequest) {
	if page := request.GetInt("page", 0); page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	if limit := request.GetInt("limit", 0); limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
}
