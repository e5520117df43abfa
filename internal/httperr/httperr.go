package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/order-desk/internal/logger"
)

type HTTPError struct {
	Code    string       `json:"error_code"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

var kindStatus = map[Kind]int{
	KindBusiness:        http.StatusBadRequest,
	KindValidation:      http.StatusBadRequest,
	KindNotFound:        http.StatusNotFound,
	KindUnauthorized:    http.StatusUnauthorized,
	KindForbidden:       http.StatusForbidden,
	KindConflict:        http.StatusConflict,
	KindTooManyAttempts: http.StatusTooManyRequests,
}

var codeMessages = map[string]string{
	"invalid_request":        "Dados inválidos.",
	"validation_failed":      "Dados inválidos.",
	"order_not_found":        "Pedido não encontrado.",
	"client_not_found":       "Cliente não encontrado.",
	"user_not_found":         "Usuário não encontrado.",
	"token_missing":          "Token não fornecido.",
	"token_invalid":          "Token inválido.",
	"token_expired":          "Token expirado.",
	"unauthorized":           "Usuário inválido ou inativo.",
	"invalid_credentials":    "Credenciais inválidas.",
	"forbidden":              "Acesso negado.",
	"email_already_exists":   "E-mail já cadastrado.",
	"client_has_orders":      "Cliente possui pedidos vinculados.",
	"too_many_attempts":      "Muitas tentativas de login. Tente novamente em 15 minutos.",
	"search_too_short":       "Digite pelo menos 3 caracteres do nome.",
	"status_not_public":      "Status não disponível para consulta pública.",
	"invalid_status":         "Status inválido.",
	"bootstrap_disabled":     "Acesso negado.",
	"contact_required":       "Informe telefone ou e-mail do cliente.",
	"cannot_demote_self":     "Você não pode remover seu próprio acesso de administrador.",
	"cannot_deactivate_self": "Você não pode desativar sua própria conta.",
}

// Respond renders err with the status its kind maps to. Errors outside the
// taxonomy are store or programming failures: they are logged and reported
// as a generic 500 without internal detail.
func Respond(c *gin.Context, err error) {
	var be BusinessError
	if errors.As(err, &be) {
		msg, ok := codeMessages[be.Code]
		if !ok {
			msg = "Não foi possível concluir a operação."
		}
		c.JSON(kindStatus[be.Kind], HTTPError{
			Code:    be.Code,
			Message: msg,
			Fields:  be.Fields,
		})
		return
	}

	logger.FromGin(c, nil).Error("unhandled error",
		zap.Error(err),
		zap.String("route", c.FullPath()),
	)
	Internal(c, "internal_error", "Erro interno.")
}
