package v1

import (
	"net/http"

	"github.com/buildledger/config"
	"github.com/buildledger/dto"
	"github.com/buildledger/lib/genai"
	"github.com/buildledger/services"
	"github.com/gin-gonic/gin"
)

// ChatController handles the natural language query endpoint
type ChatController struct {
	chatService *services.ChatService
}

// NewChatController creates a new chat controller. The generative client is
// optional: without an API key the assistant still answers from templates.
func NewChatController() *ChatController {
	var generator genai.Generator
	if apiKey := config.GetEnv("GEMINI_API_KEY", ""); apiKey != "" {
		generator = genai.NewClient(apiKey, config.GetEnv("GENAI_ENDPOINT", ""))
	}

	return &ChatController{
		chatService: services.NewChatService(generator),
	}
}

// RegisterRoutes registers chat routes
func (cc *ChatController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/chat", cc.Chat)
}

// Chat resolves a natural language question about the company's
// projects and spending. Always responds 200 with a chat envelope.
func (cc *ChatController) Chat(c *gin.Context) {
	_, companyID, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request data: " + err.Error()})
		return
	}

	envelope := cc.chatService.Resolve(c.Request.Context(), companyID, req.Query)
	c.JSON(http.StatusOK, envelope)
}
