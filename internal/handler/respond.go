package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chart0729-create/hany1/internal/repository"
)

// User-facing messages. Kept in one place so handlers and tests agree
// on the exact wording.
const (
	msgServerError     = "서버 오류가 발생했습니다."
	msgInvalidPayload  = "요청 형식이 올바르지 않습니다."
	msgListingNotFound = "매물을 찾을 수 없습니다."
	msgTitleRequired   = "제목을 입력해 주세요."
	msgSignupRequired  = "닉네임과 비밀번호를 입력해 주세요."
	msgPasswordTooLong = "비밀번호는 72자 이내로 입력해 주세요."
	msgAdminReserved   = "admin 닉네임은 사용할 수 없습니다."
	msgDuplicateUser   = "이미 등록된 닉네임 또는 전화번호입니다."
	msgLoginMismatch   = "닉네임 또는 비밀번호가 올바르지 않습니다."
	msgURLRequired     = "url 파라미터가 필요합니다."
	msgResolveFailed   = "최종 URL을 확인할 수 없습니다."
)

// respondOK merges ok:true into the payload and writes it.
func respondOK(c *gin.Context, status int, payload gin.H) {
	if payload == nil {
		payload = gin.H{}
	}
	payload["ok"] = true
	c.JSON(status, payload)
}

// respondError writes the ok:false envelope. Validation failures go out
// with status 200; not-found and infrastructure failures carry their
// HTTP status as well.
func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"ok": false, "error": msg})
}

// respondStoreError maps repository errors onto the envelope and logs
// anything unexpected.
func respondStoreError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		respondError(c, http.StatusNotFound, msgListingNotFound)
		return
	}
	log.Printf("[api] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	respondError(c, http.StatusInternalServerError, msgServerError)
}

// decodeJSON parses the request body into v, rejecting unknown fields
// so typos and mistyped payloads fail loudly at the boundary.
func decodeJSON(c *gin.Context, v any) error {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
