package restmachinery

// OutboundRequest models all the particulars of an outbound API call.
type OutboundRequest struct {
	Method      string
	Path        string
	QueryParams map[string]string
	AuthHeaders map[string]string
	Headers     map[string]string
	ReqBodyObj  interface{}
	RespObj     interface{}
}
