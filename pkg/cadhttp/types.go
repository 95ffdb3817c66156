package cadhttp

import (
	"github.com/cadkit/cadkit/pkg/cad"
	"github.com/cadkit/cadkit/pkg/errors"
	"github.com/cadkit/cadkit/pkg/geom"
)

// apiVersion prefixes every route.
const apiVersion = "/v1"

// errorPayload is the JSON body of every non-2xx response.
type errorPayload struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newErrorPayload(err error) errorPayload {
	var p errorPayload
	p.Error.Code = string(errors.GetCode(err))
	p.Error.Message = err.Error()
	return p
}

// handleResponse carries a freshly created entity handle.
type handleResponse struct {
	Handle cad.Handle `json:"handle"`
}

type nameRequest struct {
	Name string `json:"name"`
}

type nameResponse struct {
	Name string `json:"name"`
}

type namesResponse struct {
	Names []string `json:"names"`
}

type pathRequest struct {
	Path string `json:"path"`
}

type lineRequest struct {
	Start geom.Point `json:"start"`
	End   geom.Point `json:"end"`
}

type circleRequest struct {
	Center geom.Point `json:"center"`
	Radius float64    `json:"radius"`
}

type ellipseRequest struct {
	Center    geom.Point `json:"center"`
	MajorAxis geom.Point `json:"major_axis"`
	Ratio     float64    `json:"ratio"`
}

type rectangleRequest struct {
	LowerLeft  geom.Point `json:"lower_left"`
	UpperRight geom.Point `json:"upper_right"`
}

type visibilityRequest struct {
	Visible bool `json:"visible"`
}

type lockRequest struct {
	Locked bool `json:"locked"`
}

type colorRequest struct {
	Color cad.Color `json:"color"`
}

type linetypeRequest struct {
	Linetype string `json:"linetype"`
}

type pointRequest struct {
	Point geom.Point `json:"point"`
}

type scaleRequest struct {
	Base   geom.Point `json:"base"`
	Factor float64    `json:"factor"`
}

type rotateRequest struct {
	Base  geom.Point `json:"base"`
	Angle float64    `json:"angle"`
}

type exportBlockRequest struct {
	Path string `json:"path"`
}

type attributeValueRequest struct {
	Value string `json:"value"`
}

type groupRequest struct {
	Name    string       `json:"name"`
	Members []cad.Handle `json:"members"`
}

type membersRequest struct {
	Members []cad.Handle `json:"members"`
}

type membersResponse struct {
	Members []cad.Handle `json:"members"`
}

type promptRequest struct {
	Prompt string `json:"prompt"`
}

type pointResponse struct {
	Point geom.Point `json:"point"`
}

type stringResponse struct {
	Value string `json:"value"`
}

type intResponse struct {
	Value int `json:"value"`
}

type messageRequest struct {
	Message string `json:"message"`
}
