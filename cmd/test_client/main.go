package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	endpoint := flag.String("endpoint", "http://localhost:8080/mcp/stream", "MCP streamable HTTP endpoint")
	ingestIDs := flag.Bool("ingest", false, "also run ingest_employers for a single employer")
	spreadsheetID := flag.String("spreadsheet", "", "spreadsheet id for export_vacancies; skipped when empty")
	flag.Parse()

	ctx := context.Background()

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "career-navigator-test-client",
		Version: "0.1.0",
	}, nil)

	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{
		Endpoint: *endpoint,
	}, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer func() { _ = session.Close() }()

	log.Printf("Connected to server (session ID: %s)\n", session.ID())

	testListTools(ctx, session)

	if *ingestIDs {
		callTool(ctx, session, "ingest_employers", map[string]any{"ids": []string{"1740"}})
	}

	callTool(ctx, session, "companies_vacancy_counts", map[string]any{})
	callTool(ctx, session, "average_salary", map[string]any{})
	callTool(ctx, session, "list_vacancies", map[string]any{"filter": "above_average"})
	callTool(ctx, session, "list_vacancies", map[string]any{"filter": "keyword", "keyword": "golang"})

	// Edge case: keyword filter without a keyword must be rejected
	callTool(ctx, session, "list_vacancies", map[string]any{"filter": "keyword"})

	if *spreadsheetID != "" {
		callTool(ctx, session, "export_vacancies", map[string]any{
			"filter": "all",
			"sheet":  map[string]any{"spreadsheet_id": *spreadsheetID, "tab": "Vacancies"},
		})
	}

	fmt.Println("\nAll tests completed")
}

func testListTools(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: list tools")

	res, err := session.ListTools(ctx, nil)
	if err != nil {
		log.Printf("list tools failed: %v", err)
		return
	}
	for _, tool := range res.Tools {
		fmt.Printf("- %s: %s\n", tool.Name, tool.Description)
	}
}

func callTool(ctx context.Context, session *mcp.ClientSession, name string, args map[string]any) {
	fmt.Printf("\nTEST: %s %v\n", name, args)

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		log.Printf("%s failed: %v", name, err)
		return
	}
	if result.IsError {
		fmt.Printf("%s returned a tool error\n", name)
	}

	printResult(result)
}

func printResult(res *mcp.CallToolResult) {
	for _, c := range res.Content {
		if txt, ok := c.(*mcp.TextContent); ok {
			fmt.Println(txt.Text)
		}
	}
}
