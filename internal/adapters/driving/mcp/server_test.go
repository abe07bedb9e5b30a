package mcp

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil record service returns error", func(t *testing.T) {
		ports := &Ports{}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingRecordService)
	})

	t.Run("nil ports returns error", func(t *testing.T) {
		server, err := NewServer(nil)
		assert.ErrorIs(t, err, ErrMissingRecordService)
		assert.Nil(t, server)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		ports := &Ports{
			Records: &mockRecordService{},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("records only is valid", func(t *testing.T) {
		ports := &Ports{Records: &mockRecordService{}}
		assert.NoError(t, ports.Validate())
	})

	t.Run("all ports is valid", func(t *testing.T) {
		ports := &Ports{
			Records:   &mockRecordService{},
			Generate:  &mockGenerateService{},
			Templates: &mockTemplateService{},
		}
		assert.NoError(t, ports.Validate())
	})
}

func TestServer_ClientSession(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	server, err := NewServer(&Ports{Records: &mockRecordService{cases: testCases()}})
	require.NoError(t, err)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	defer serverSession.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer session.Close()

	assert.Contains(t, session.InitializeResult().Instructions, "list_cases")

	tools, err := session.ListTools(ctx, &mcp.ListToolsParams{})
	require.NoError(t, err)
	names := make([]string, 0, len(tools.Tools))
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"list_cases", "set_override", "generate", "check_templates"}, names)

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "list_cases",
		Arguments: map[string]any{"mode": "warrant", "eligible_only": true},
	})
	require.NoError(t, err)
	assert.False(t, result.IsError)
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, "1DTC-20-000002")
	assert.NotContains(t, text.Text, "1DTC-20-000001")

	result, err = session.CallTool(ctx, &mcp.CallToolParams{Name: "generate", Arguments: map[string]any{}})
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestServer_Handler(t *testing.T) {
	server, err := NewServer(&Ports{Records: &mockRecordService{}})
	require.NoError(t, err)
	assert.NotNil(t, server.Handler())
}
