package handlers

import (
	"net/http"

	"duoChat/internal/errs"
	"duoChat/internal/models"
	"duoChat/internal/msgs"
	"duoChat/internal/services"
	"duoChat/internal/utils"

	"github.com/gin-gonic/gin"
)

type RestHandler struct {
	authService *services.AuthenticationService
	chatService *services.ChatService
}

func NewRestHandler(
	authService *services.AuthenticationService,
	chatService *services.ChatService,
) *RestHandler {
	return &RestHandler{
		authService: authService,
		chatService: chatService,
	}
}

// Status godoc
// @Summary      Liveness probe
// @Tags         status
// @Produce      plain
// @Success      200  {string}  string  "Server is live"
// @Router       /status [get]
func (rh *RestHandler) Status(ctx *gin.Context) {
	ctx.String(http.StatusOK, msgs.MsgServerIsLive)
}

// Signup godoc
// @Summary      Create an account
// @Description  Creates an account and returns a token for it
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      models.SignupRequestBody  true  "Account details"
// @Success      200   {object}  models.AuthResponse
// @Router       /auth/signup [post]
func (rh *RestHandler) Signup(ctx *gin.Context) {
	var body models.SignupRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondError(ctx, errs.Validation(errs.ErrInvalidRequestBody))
		return
	}

	token, user, err := rh.authService.Signup(ctx.Request.Context(), &body)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, models.AuthResponse{
		Response: success(msgs.MsgAccountCreated),
		Token:    token,
		UserData: user,
	})
}

// Login godoc
// @Summary      Login to an account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      models.LoginRequestBody  true  "Credentials"
// @Success      200   {object}  models.AuthResponse
// @Router       /auth/login [post]
func (rh *RestHandler) Login(ctx *gin.Context) {
	var body models.LoginRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondError(ctx, errs.Validation(errs.ErrInvalidRequestBody))
		return
	}

	token, user, err := rh.authService.Login(ctx.Request.Context(), &body)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, models.AuthResponse{
		Response: success(msgs.MsgLoginSuccessful),
		Token:    token,
		UserData: user,
	})
}

// CheckAuth godoc
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.UserResponse
// @Failure      401  {object}  models.Response
// @Failure      404  {object}  models.Response
// @Router       /auth/check [get]
func (rh *RestHandler) CheckAuth(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, models.UserResponse{
		Response: success(""),
		User:     currentUser(ctx),
	})
}

// UpdateProfile godoc
// @Summary      Update profile
// @Description  profilePic is a data URI and is replaced by the uploaded image URL
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      models.UpdateProfileRequestBody  true  "Changed fields"
// @Success      200   {object}  models.ProfileResponse
// @Router       /auth/update-profile [put]
func (rh *RestHandler) UpdateProfile(ctx *gin.Context) {
	var body models.UpdateProfileRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondError(ctx, errs.Validation(errs.ErrInvalidRequestBody))
		return
	}

	user, err := rh.authService.UpdateProfile(ctx.Request.Context(), utils.GetUserIdFromContext(ctx), &body)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, models.ProfileResponse{
		Response:    success(msgs.MsgProfileUpdated),
		User:        user,
		UpdatedUser: user,
	})
}

// DeleteAccount godoc
// @Summary      Delete account
// @Description  Removes the account and every message it sent or received
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.Response
// @Router       /auth/delete [delete]
func (rh *RestHandler) DeleteAccount(ctx *gin.Context) {
	if err := rh.authService.DeleteAccount(ctx.Request.Context(), currentClaims(ctx)); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, success(msgs.MsgAccountDeleted))
}

// Logout godoc
// @Summary      Revoke the presented token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.Response
// @Router       /auth/logout [post]
func (rh *RestHandler) Logout(ctx *gin.Context) {
	if err := rh.authService.Logout(ctx.Request.Context(), currentClaims(ctx)); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, success(msgs.MsgLoggedOut))
}

// GetUsers godoc
// @Summary      Sidebar peers
// @Description  Every other user plus unseen message counts per sender
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.PeersResponse
// @Router       /messages/users [get]
func (rh *RestHandler) GetUsers(ctx *gin.Context) {
	users, unseen, err := rh.chatService.ListPeers(ctx.Request.Context(), utils.GetUserIdFromContext(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, models.PeersResponse{
		Response:       success(""),
		Users:          users,
		UnseenMessages: unseen,
	})
}

// GetMessages godoc
// @Summary      Conversation history
// @Description  Messages between the caller and peerId, oldest first. Marks the caller's received messages as seen.
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        peerId  path      string  true  "Peer user id"
// @Success      200     {object}  models.MessagesResponse
// @Router       /messages/{peerId} [get]
func (rh *RestHandler) GetMessages(ctx *gin.Context) {
	messages, err := rh.chatService.FetchHistory(ctx.Request.Context(), utils.GetUserIdFromContext(ctx), ctx.Param("peerId"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, models.MessagesResponse{
		Response: success(""),
		Messages: messages,
	})
}

// MarkMessageAsSeen godoc
// @Summary      Mark one message as seen
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        messageId  path      string  true  "Message id"
// @Success      200        {object}  models.Response
// @Router       /messages/mark/{messageId} [put]
func (rh *RestHandler) MarkMessageAsSeen(ctx *gin.Context) {
	err := rh.chatService.MarkSeen(ctx.Request.Context(), utils.GetUserIdFromContext(ctx), ctx.Param("messageId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, success(msgs.MsgMessageMarkedAsSeen))
}

// SendMessage godoc
// @Summary      Send a message
// @Description  image may be a data URI, which is uploaded, or an http(s) URL
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        peerId  path      string                         true  "Recipient user id"
// @Param        body    body      models.SendMessageRequestBody  true  "Message"
// @Success      200     {object}  models.NewMessageResponse
// @Router       /messages/send/{peerId} [post]
func (rh *RestHandler) SendMessage(ctx *gin.Context) {
	var body models.SendMessageRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondError(ctx, errs.Validation(errs.ErrInvalidRequestBody))
		return
	}

	message, err := rh.chatService.Send(ctx.Request.Context(), utils.GetUserIdFromContext(ctx), ctx.Param("peerId"), &body)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, models.NewMessageResponse{
		Response:   success(""),
		NewMessage: message,
	})
}
