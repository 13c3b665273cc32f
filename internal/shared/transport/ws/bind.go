package ws

import (
	"HexRealm/modules/kit/errx"

	json "github.com/goccy/go-json"
)

// BindJSON 将 WsMsgReq.Body.Msg 反序列化到目标结构体。
func BindJSON(req *WsMsgReq, dst any) error {
	if req == nil || req.Body == nil {
		return errx.ErrReqParamERR.WithData("reason", "ws request body is nil")
	}
	raw, err := json.Marshal(req.Body.Msg)
	if err != nil {
		return errx.ErrReqParamERR.WithCause(err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return errx.ErrReqParamERR.WithCause(err)
	}
	return nil
}
