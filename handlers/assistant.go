package handlers

import (
	"net/http"

	"github.com/voueil/Herafona-website/config"

	"github.com/gin-gonic/gin"
)

// AssistantHandler exposes the embedded chat widget configuration. The widget
// itself is a third-party script the client injects on the assistant page and
// removes on leaving it; the server only hands out the fixed identifiers.
type AssistantHandler struct{}

// NewAssistantHandler wires the assistant endpoint.
func NewAssistantHandler() *AssistantHandler {
	return &AssistantHandler{}
}

// WidgetConfigHandler returns the Watson Assistant web-chat identifiers.
func (h *AssistantHandler) WidgetConfigHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"integrationID":     config.AppConfig.WatsonIntegrationID,
		"region":            config.AppConfig.WatsonRegion,
		"serviceInstanceID": config.AppConfig.WatsonServiceInstanceID,
		"scriptURL":         "https://web-chat.global.assistant.watson.appdomain.cloud/versions/latest/WatsonAssistantChatEntry.js",
	})
}
