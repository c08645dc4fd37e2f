package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/JankMajesty/selectmtgdb/internal/console"
)

// RegisterTools wires the read-only console operations into MCP tools.
func RegisterTools(s *server.MCPServer, store *console.Store) {
	queryTool := mcp.NewTool("query_cards",
		mcp.WithDescription("Run a read-only SQL query (SELECT or WITH) against the card database"),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("SQL query to execute; anything that is not a single read statement is rejected"),
		),
	)

	schemaTool := mcp.NewTool("scan_schema",
		mcp.WithDescription("List the card database tables and their columns"),
	)

	sampleTool := mcp.NewTool("sample_table",
		mcp.WithDescription("Return a few rows from one table of the card database"),
		mcp.WithString("table",
			mcp.Required(),
			mcp.Description("Name of the table to sample"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Number of rows to return (default: 10)"),
		),
	)

	s.AddTool(queryTool, queryHandler(store))
	s.AddTool(schemaTool, schemaHandler(store))
	s.AddTool(sampleTool, sampleHandler(store))
}

// queryHandler validates then executes. Both failure kinds come back as
// tool errors with the same wording the web console uses.
func queryHandler(store *console.Store) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		raw, err := request.RequireString("query")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("missing query parameter: %v", err)), nil
		}

		cleaned, err := console.Validate(raw)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		res := store.Execute(ctx, cleaned)
		if res.Error != "" {
			return mcp.NewToolResultError(res.Error), nil
		}
		return toolJSON(res)
	}
}

func schemaHandler(store *console.Store) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		schema, err := store.SchemaMap(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to read schema: %v", err)), nil
		}
		return toolJSON(schema)
	}
}

func sampleHandler(store *console.Store) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		table, err := request.RequireString("table")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("missing table parameter: %v", err)), nil
		}

		limit := 10
		if args, ok := request.Params.Arguments.(map[string]any); ok {
			if v, ok := args["limit"].(float64); ok && v > 0 {
				limit = int(v)
			}
		}
		if limit > console.MaxRows {
			limit = console.MaxRows
		}

		// Only names the catalog reports are allowed into the query text.
		schema, err := store.SchemaMap(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to read schema: %v", err)), nil
		}
		if _, ok := schema[table]; !ok {
			return mcp.NewToolResultError(fmt.Sprintf("unknown table %q", table)), nil
		}

		res := store.Execute(ctx, fmt.Sprintf(`SELECT * FROM "%s" LIMIT %d`, table, limit))
		if res.Error != "" {
			return mcp.NewToolResultError(res.Error), nil
		}
		return toolJSON(res)
	}
}

func toolJSON(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal results: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
