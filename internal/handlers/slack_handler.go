package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/slack-go/slack"

	"github.com/sunwatch/slack-sunset-bot/internal/domain"
	"github.com/sunwatch/slack-sunset-bot/internal/domain/contract"
	slackcmd "github.com/sunwatch/slack-sunset-bot/internal/slack"
)

type SlackHandler struct {
	slackClient     contract.SlackClient
	reminderService contract.ReminderService
	signingSecret   string
	defaultAddress  string
}

func New(slackClient contract.SlackClient, reminderService contract.ReminderService, signingSecret, defaultAddress string) *SlackHandler {
	return &SlackHandler{
		slackClient:     slackClient,
		reminderService: reminderService,
		signingSecret:   signingSecret,
		defaultAddress:  defaultAddress,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	// Parse command
	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Parse our command
	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	// Handle command
	response := h.handleCommand(r, cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdSet:
		return h.handleSet(r, cmd, slashCmd)
	case slackcmd.CmdCancel:
		return h.handleCancel(r, slashCmd)
	case slackcmd.CmdCheck:
		return h.handleCheck(r, cmd)
	case slackcmd.CmdStatus:
		return h.handleStatus(slashCmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

// commandAddress picks the explicit address from the command args, falling
// back to the configured default. Empty string means neither is available.
func (h *SlackHandler) commandAddress(cmd *slackcmd.Command) string {
	if len(cmd.Args) > 0 {
		return strings.Join(cmd.Args, " ")
	}
	return h.defaultAddress
}

func (h *SlackHandler) handleSet(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	address := h.commandAddress(cmd)
	if address == "" {
		return h.createErrorResponse("No address given and no default address is configured. Try `/sunset set <address>`.")
	}

	place, err := h.reminderService.Subscribe(r.Context(), slashCmd.ChannelID, address)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadySubscribed):
			return h.createErrorResponse("This channel already has a sunset reminder. Use `/sunset cancel` first to change it.")
		case errors.Is(err, domain.ErrAddressNotFound):
			return h.createErrorResponse(fmt.Sprintf("I couldn't find %q. Try a more specific address.", address))
		default:
			return h.createErrorResponse(fmt.Sprintf("Failed to set the reminder: %v", err))
		}
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ Sunset reminder set for %s. I'll ping this channel %d minutes before sundown every day.", place.DisplayName, domain.OffsetMinutes),
	}
}

func (h *SlackHandler) handleCancel(r *http.Request, slashCmd *slack.SlashCommand) *slack.Msg {
	if err := h.reminderService.Unsubscribe(r.Context(), slashCmd.ChannelID); err != nil {
		if errors.Is(err, domain.ErrNotSubscribed) {
			return h.createErrorResponse("This channel has no sunset reminder.")
		}
		return h.createErrorResponse(fmt.Sprintf("Failed to cancel the reminder: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         "✅ Sunset reminder cancelled.",
	}
}

func (h *SlackHandler) handleCheck(r *http.Request, cmd *slackcmd.Command) *slack.Msg {
	address := h.commandAddress(cmd)
	if address == "" {
		return h.createErrorResponse("No address given and no default address is configured. Try `/sunset check <address>`.")
	}

	text, err := h.reminderService.PeekSunset(r.Context(), address)
	if err != nil {
		if errors.Is(err, domain.ErrAddressNotFound) {
			return h.createErrorResponse(fmt.Sprintf("I couldn't find %q. Try a more specific address.", address))
		}
		return h.createErrorResponse(fmt.Sprintf("Failed to look up the sunset: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "🌅 " + text,
	}
}

func (h *SlackHandler) handleStatus(slashCmd *slack.SlashCommand) *slack.Msg {
	if h.reminderService.HasReminder(slashCmd.ChannelID) {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         fmt.Sprintf("This channel gets a sunset reminder %d minutes before sundown every day.", domain.OffsetMinutes),
		}
	}
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "This channel has no sunset reminder. Use `/sunset set [address]` to add one.",
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "❌ " + message,
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.createErrorResponse(message))
}
