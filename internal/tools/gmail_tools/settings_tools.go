package gmail_tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	gmail_v1 "google.golang.org/api/gmail/v1"

	"github.com/universal-mcp/google-mail/internal/gmail"
	"github.com/universal-mcp/google-mail/internal/instrumentation"
	"github.com/universal-mcp/google-mail/internal/server"
	"github.com/universal-mcp/google-mail/internal/tools/common"
)

// RegisterSettingsTools registers mailbox settings tools with the MCP server
func RegisterSettingsTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	// Get vacation settings tool
	getVacationTool := mcp.NewTool("get_vacation_settings",
		mcp.WithDescription("Get the Gmail vacation responder (out-of-office auto-reply) settings"),
		withAccountOption(),
	)

	s.AddTool(getVacationTool, common.InstrumentedToolHandlerWithCategory("get_vacation_settings",
		instrumentation.CategorySettings, instrumentation.OperationGet, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetVacationSettings(ctx, request, sc)
		}))

	// Get language settings tool
	getLanguageTool := mcp.NewTool("get_language_settings",
		mcp.WithDescription("Get the Gmail display language setting"),
		withAccountOption(),
	)

	s.AddTool(getLanguageTool, common.InstrumentedToolHandlerWithCategory("get_language_settings",
		instrumentation.CategorySettings, instrumentation.OperationGet, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetLanguageSettings(ctx, request, sc)
		}))

	// Get IMAP/POP/auto-forwarding settings tool
	getMailAccessTool := mcp.NewTool("get_mail_access_settings",
		mcp.WithDescription("Get the Gmail IMAP, POP, and auto-forwarding settings"),
		withAccountOption(),
	)

	s.AddTool(getMailAccessTool, common.InstrumentedToolHandlerWithCategory("get_mail_access_settings",
		instrumentation.CategorySettings, instrumentation.OperationGet, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetMailAccessSettings(ctx, request, sc)
		}))

	// List send-as aliases tool
	listSendAsTool := mcp.NewTool("list_send_as",
		mcp.WithDescription("List the send-as aliases of the account, including verification status"),
		withAccountOption(),
	)

	s.AddTool(listSendAsTool, common.InstrumentedToolHandlerWithCategory("list_send_as",
		instrumentation.CategorySettings, instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListSendAs(ctx, request, sc)
		}))

	// List forwarding addresses tool
	listForwardingTool := mcp.NewTool("list_forwarding_addresses",
		mcp.WithDescription("List the forwarding addresses registered for the account"),
		withAccountOption(),
	)

	s.AddTool(listForwardingTool, common.InstrumentedToolHandlerWithCategory("list_forwarding_addresses",
		instrumentation.CategorySettings, instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListForwardingAddresses(ctx, request, sc)
		}))

	// List delegates tool
	listDelegatesTool := mcp.NewTool("list_delegates",
		mcp.WithDescription("List the delegates of the account (users granted mailbox access)"),
		withAccountOption(),
	)

	s.AddTool(listDelegatesTool, common.InstrumentedToolHandlerWithCategory("list_delegates",
		instrumentation.CategorySettings, instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListDelegates(ctx, request, sc)
		}))

	// List history tool
	listHistoryTool := mcp.NewTool("list_history",
		mcp.WithDescription("List mailbox change history since a known history ID. Use get_profile to obtain the current history ID."),
		withAccountOption(),
		mcp.WithNumber("startHistoryId",
			mcp.Required(),
			mcp.Description("The history ID to list changes from"),
		),
		mcp.WithString("historyTypes",
			mcp.Description("Comma-separated change types to include: messageAdded, messageDeleted, labelAdded, labelRemoved"),
		),
		mcp.WithString("labelId",
			mcp.Description("Only return changes affecting this label"),
		),
		mcp.WithNumber("maxResults",
			mcp.Description("Maximum number of history records to return (default: 100)"),
		),
	)

	s.AddTool(listHistoryTool, common.InstrumentedToolHandlerWithCategory("list_history",
		instrumentation.CategoryHistory, instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListHistory(ctx, request, sc)
		}))

	if readOnly {
		return nil
	}

	// Update vacation settings tool
	updateVacationTool := mcp.NewTool("update_vacation_settings",
		mcp.WithDescription("Enable, disable, or change the Gmail vacation responder"),
		withAccountOption(),
		mcp.WithBoolean("enabled",
			mcp.Required(),
			mcp.Description("Whether the auto-reply is enabled"),
		),
		mcp.WithString("subject",
			mcp.Description("Auto-reply subject line"),
		),
		mcp.WithString("body",
			mcp.Description("Auto-reply body (plain text)"),
		),
		mcp.WithBoolean("restrictToContacts",
			mcp.Description("Only reply to known contacts (default: false)"),
		),
		mcp.WithBoolean("restrictToDomain",
			mcp.Description("Only reply to senders in the same domain (default: false)"),
		),
	)

	s.AddTool(updateVacationTool, common.InstrumentedToolHandlerWithCategory("update_vacation_settings",
		instrumentation.CategorySettings, instrumentation.OperationUpdate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleUpdateVacationSettings(ctx, request, sc)
		}))

	// Update language settings tool
	updateLanguageTool := mcp.NewTool("update_language_settings",
		mcp.WithDescription("Change the Gmail display language"),
		withAccountOption(),
		mcp.WithString("displayLanguage",
			mcp.Required(),
			mcp.Description("RFC 3066 language tag (e.g., 'en', 'de', 'fr')"),
		),
	)

	s.AddTool(updateLanguageTool, common.InstrumentedToolHandlerWithCategory("update_language_settings",
		instrumentation.CategorySettings, instrumentation.OperationUpdate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleUpdateLanguageSettings(ctx, request, sc)
		}))

	// Create forwarding address tool
	createForwardingTool := mcp.NewTool("create_forwarding_address",
		mcp.WithDescription("Register a new forwarding address. Google sends a verification mail to the address."),
		withAccountOption(),
		mcp.WithString("email",
			mcp.Required(),
			mcp.Description("The email address to register for forwarding"),
		),
	)

	s.AddTool(createForwardingTool, common.InstrumentedToolHandlerWithCategory("create_forwarding_address",
		instrumentation.CategorySettings, instrumentation.OperationCreate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleCreateForwardingAddress(ctx, request, sc)
		}))

	// Delete forwarding address tool
	deleteForwardingTool := mcp.NewTool("delete_forwarding_address",
		mcp.WithDescription("Remove a registered forwarding address"),
		withAccountOption(),
		mcp.WithString("email",
			mcp.Required(),
			mcp.Description("The forwarding address to remove"),
		),
	)

	s.AddTool(deleteForwardingTool, common.InstrumentedToolHandlerWithCategory("delete_forwarding_address",
		instrumentation.CategorySettings, instrumentation.OperationDelete, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleDeleteForwardingAddress(ctx, request, sc)
		}))

	// Verify send-as alias tool
	verifySendAsTool := mcp.NewTool("verify_send_as",
		mcp.WithDescription("Re-send the verification mail for a pending send-as alias"),
		withAccountOption(),
		mcp.WithString("email",
			mcp.Required(),
			mcp.Description("The send-as alias to verify"),
		),
	)

	s.AddTool(verifySendAsTool, common.InstrumentedToolHandlerWithCategory("verify_send_as",
		instrumentation.CategorySettings, instrumentation.OperationUpdate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleVerifySendAs(ctx, request, sc)
		}))

	// Create delegate tool
	createDelegateTool := mcp.NewTool("create_delegate",
		mcp.WithDescription("Grant a user delegate access to the mailbox. Requires a Google Workspace account."),
		withAccountOption(),
		mcp.WithString("email",
			mcp.Required(),
			mcp.Description("The email address of the user to add as delegate"),
		),
	)

	s.AddTool(createDelegateTool, common.InstrumentedToolHandlerWithCategory("create_delegate",
		instrumentation.CategorySettings, instrumentation.OperationCreate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleCreateDelegate(ctx, request, sc)
		}))

	// Delete delegate tool
	deleteDelegateTool := mcp.NewTool("delete_delegate",
		mcp.WithDescription("Revoke a user's delegate access to the mailbox"),
		withAccountOption(),
		mcp.WithString("email",
			mcp.Required(),
			mcp.Description("The email address of the delegate to remove"),
		),
	)

	s.AddTool(deleteDelegateTool, common.InstrumentedToolHandlerWithCategory("delete_delegate",
		instrumentation.CategorySettings, instrumentation.OperationDelete, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleDeleteDelegate(ctx, request, sc)
		}))

	// Start watch tool
	startWatchTool := mcp.NewTool("start_watch",
		mcp.WithDescription("Start push notifications for mailbox changes to a Cloud Pub/Sub topic"),
		withAccountOption(),
		mcp.WithString("topicName",
			mcp.Required(),
			mcp.Description("Fully qualified Pub/Sub topic name (projects/<project>/topics/<topic>)"),
		),
		mcp.WithString("labelIds",
			mcp.Description("Comma-separated list of label IDs to restrict notifications to"),
		),
	)

	s.AddTool(startWatchTool, common.InstrumentedToolHandlerWithCategory("start_watch",
		instrumentation.CategoryHistory, instrumentation.OperationCreate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleStartWatch(ctx, request, sc)
		}))

	// Stop watch tool
	stopWatchTool := mcp.NewTool("stop_watch",
		mcp.WithDescription("Stop push notifications for mailbox changes"),
		withAccountOption(),
	)

	s.AddTool(stopWatchTool, common.InstrumentedToolHandlerWithCategory("stop_watch",
		instrumentation.CategoryHistory, instrumentation.OperationDelete, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleStopWatch(ctx, request, sc)
		}))

	return nil
}

func handleGetVacationSettings(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	client, errResult := resolveClient(ctx, sc, request.GetArguments())
	if errResult != nil {
		return errResult, nil
	}

	settings, err := client.GetVacationSettings()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get vacation settings: %v", err)), nil
	}

	result := fmt.Sprintf("Auto-reply enabled: %t\nSubject: %s\nRestrict to contacts: %t\nRestrict to domain: %t\n\n%s",
		settings.EnableAutoReply, settings.ResponseSubject,
		settings.RestrictToContacts, settings.RestrictToDomain,
		settings.ResponseBodyPlainText)

	return mcp.NewToolResultText(result), nil
}

func handleUpdateVacationSettings(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	enabled, ok := args["enabled"].(bool)
	if !ok {
		return mcp.NewToolResultError("enabled is required"), nil
	}

	client, errResult := resolveClient(ctx, sc, args)
	if errResult != nil {
		return errResult, nil
	}

	settings := &gmail_v1.VacationSettings{
		EnableAutoReply:       enabled,
		ResponseSubject:       optionalString(args, "subject", ""),
		ResponseBodyPlainText: optionalString(args, "body", ""),
		RestrictToContacts:    optionalBool(args, "restrictToContacts"),
		RestrictToDomain:      optionalBool(args, "restrictToDomain"),
	}

	updated, err := client.UpdateVacationSettings(settings)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to update vacation settings: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Vacation settings updated. Auto-reply enabled: %t", updated.EnableAutoReply)), nil
}

func handleGetLanguageSettings(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	client, errResult := resolveClient(ctx, sc, request.GetArguments())
	if errResult != nil {
		return errResult, nil
	}

	settings, err := client.GetLanguageSettings()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get language settings: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Display language: %s", settings.DisplayLanguage)), nil
}

func handleUpdateLanguageSettings(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	displayLanguage, errResult := requiredString(args, "displayLanguage")
	if errResult != nil {
		return errResult, nil
	}

	client, errResult := resolveClient(ctx, sc, args)
	if errResult != nil {
		return errResult, nil
	}

	updated, err := client.UpdateLanguageSettings(displayLanguage)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to update language settings: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Display language updated to: %s", updated.DisplayLanguage)), nil
}

func handleGetMailAccessSettings(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	client, errResult := resolveClient(ctx, sc, request.GetArguments())
	if errResult != nil {
		return errResult, nil
	}

	imap, err := client.GetImapSettings()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get IMAP settings: %v", err)), nil
	}
	pop, err := client.GetPopSettings()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get POP settings: %v", err)), nil
	}
	autoForwarding, err := client.GetAutoForwarding()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get auto-forwarding settings: %v", err)), nil
	}

	result := fmt.Sprintf("IMAP enabled: %t\nPOP access window: %s\nAuto-forwarding enabled: %t",
		imap.Enabled, pop.AccessWindow, autoForwarding.Enabled)
	if autoForwarding.Enabled {
		result += fmt.Sprintf("\nForwarding to: %s (disposition: %s)",
			autoForwarding.EmailAddress, autoForwarding.Disposition)
	}

	return mcp.NewToolResultText(result), nil
}

func handleListSendAs(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	client, errResult := resolveClient(ctx, sc, request.GetArguments())
	if errResult != nil {
		return errResult, nil
	}

	aliases, err := client.ListSendAs()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list send-as aliases: %v", err)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d send-as aliases:\n", len(aliases))
	for _, alias := range aliases {
		fmt.Fprintf(&b, "- %s", alias.SendAsEmail)
		if alias.DisplayName != "" {
			fmt.Fprintf(&b, " (%s)", alias.DisplayName)
		}
		if alias.IsDefault {
			b.WriteString(" [default]")
		}
		if alias.VerificationStatus != "" {
			fmt.Fprintf(&b, " [%s]", alias.VerificationStatus)
		}
		b.WriteString("\n")
	}

	return mcp.NewToolResultText(b.String()), nil
}

func handleVerifySendAs(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	email, errResult := requiredString(args, "email")
	if errResult != nil {
		return errResult, nil
	}

	client, errResult := resolveClient(ctx, sc, args)
	if errResult != nil {
		return errResult, nil
	}

	if err := client.VerifySendAs(email); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to verify send-as alias: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Verification mail sent to %s", email)), nil
}

func handleListForwardingAddresses(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	client, errResult := resolveClient(ctx, sc, request.GetArguments())
	if errResult != nil {
		return errResult, nil
	}

	addresses, err := client.ListForwardingAddresses()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list forwarding addresses: %v", err)), nil
	}

	if len(addresses) == 0 {
		return mcp.NewToolResultText("No forwarding addresses registered"), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d forwarding addresses:\n", len(addresses))
	for _, addr := range addresses {
		fmt.Fprintf(&b, "- %s [%s]\n", addr.ForwardingEmail, addr.VerificationStatus)
	}

	return mcp.NewToolResultText(b.String()), nil
}

func handleCreateForwardingAddress(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	email, errResult := requiredString(args, "email")
	if errResult != nil {
		return errResult, nil
	}

	client, errResult := resolveClient(ctx, sc, args)
	if errResult != nil {
		return errResult, nil
	}

	addr, err := client.CreateForwardingAddress(email)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create forwarding address: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Forwarding address %s created [%s]",
		addr.ForwardingEmail, addr.VerificationStatus)), nil
}

func handleDeleteForwardingAddress(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	email, errResult := requiredString(args, "email")
	if errResult != nil {
		return errResult, nil
	}

	client, errResult := resolveClient(ctx, sc, args)
	if errResult != nil {
		return errResult, nil
	}

	if err := client.DeleteForwardingAddress(email); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to delete forwarding address: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Forwarding address %s deleted", email)), nil
}

func handleListDelegates(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	client, errResult := resolveClient(ctx, sc, request.GetArguments())
	if errResult != nil {
		return errResult, nil
	}

	delegates, err := client.ListDelegates()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list delegates: %v", err)), nil
	}

	if len(delegates) == 0 {
		return mcp.NewToolResultText("No delegates configured"), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d delegates:\n", len(delegates))
	for _, delegate := range delegates {
		fmt.Fprintf(&b, "- %s [%s]\n", delegate.DelegateEmail, delegate.VerificationStatus)
	}

	return mcp.NewToolResultText(b.String()), nil
}

func handleCreateDelegate(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	email, errResult := requiredString(args, "email")
	if errResult != nil {
		return errResult, nil
	}

	client, errResult := resolveClient(ctx, sc, args)
	if errResult != nil {
		return errResult, nil
	}

	delegate, err := client.CreateDelegate(email)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create delegate: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Delegate %s added [%s]",
		delegate.DelegateEmail, delegate.VerificationStatus)), nil
}

func handleDeleteDelegate(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	email, errResult := requiredString(args, "email")
	if errResult != nil {
		return errResult, nil
	}

	client, errResult := resolveClient(ctx, sc, args)
	if errResult != nil {
		return errResult, nil
	}

	if err := client.DeleteDelegate(email); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to delete delegate: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Delegate %s removed", email)), nil
}

func handleListHistory(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	startHistoryID := optionalInt(args, "startHistoryId", 0)
	if startHistoryID <= 0 {
		return mcp.NewToolResultError("startHistoryId is required"), nil
	}

	client, errResult := resolveClient(ctx, sc, args)
	if errResult != nil {
		return errResult, nil
	}

	opts := gmail.ListHistoryOptions{
		StartHistoryID: uint64(startHistoryID),
		LabelID:        optionalString(args, "labelId", ""),
		MaxResults:     optionalInt(args, "maxResults", 100),
	}
	if historyTypes := optionalString(args, "historyTypes", ""); historyTypes != "" {
		opts.HistoryTypes = splitAddresses(historyTypes)
	}

	resp, err := client.ListHistory(opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list history: %v", err)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d history records (current history ID: %d):\n", len(resp.History), resp.HistoryId)
	for _, h := range resp.History {
		fmt.Fprintf(&b, "- ID %d: %d added, %d deleted, %d label changes\n",
			h.Id, len(h.MessagesAdded), len(h.MessagesDeleted),
			len(h.LabelsAdded)+len(h.LabelsRemoved))
	}
	if resp.NextPageToken != "" {
		fmt.Fprintf(&b, "Next page token: %s\n", resp.NextPageToken)
	}

	return mcp.NewToolResultText(b.String()), nil
}

func handleStartWatch(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	topicName, errResult := requiredString(args, "topicName")
	if errResult != nil {
		return errResult, nil
	}

	client, errResult := resolveClient(ctx, sc, args)
	if errResult != nil {
		return errResult, nil
	}

	var labelIDs []string
	if raw := optionalString(args, "labelIds", ""); raw != "" {
		labelIDs = splitLabelIDs(raw)
	}

	resp, err := client.Watch(topicName, labelIDs)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to start watch: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Watch started. History ID: %d, expires: %d", resp.HistoryId, resp.Expiration)), nil
}

func handleStopWatch(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	client, errResult := resolveClient(ctx, sc, request.GetArguments())
	if errResult != nil {
		return errResult, nil
	}

	if err := client.Stop(); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to stop watch: %v", err)), nil
	}

	return mcp.NewToolResultText("Watch stopped"), nil
}
