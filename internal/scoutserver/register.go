// Package scoutserver registers the creator-analysis MCP tools.
package scoutserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterTools registers all creator tools on the given MCP server:
// creator_search, ad_history, outreach_send, send_log, quota_status,
// quota_reset_ai.
func RegisterTools(server *mcp.Server) {
	registerCreatorSearch(server)
	registerAdHistory(server)
	registerOutreachSend(server)
	registerSendLog(server)
	registerQuotaStatus(server)
	registerQuotaResetAI(server)
}
