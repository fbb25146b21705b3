package test

import (
	"encoding/json"
	"net/http/httptest"
)

type Result[T any] struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data T      `json:"data"`
}

type JSONResponseRecorder[T any] struct {
	*httptest.ResponseRecorder
}

func NewJSONResponseRecorder[T any]() *JSONResponseRecorder[T] {
	return &JSONResponseRecorder[T]{
		ResponseRecorder: httptest.NewRecorder(),
	}
}

func (r *JSONResponseRecorder[T]) Scan() (Result[T], error) {
	var result Result[T]
	err := json.Unmarshal(r.Body.Bytes(), &result)
	return result, err
}

// MustScan 解析失败直接 panic, 测试里少写一个 err 分支
func (r *JSONResponseRecorder[T]) MustScan() Result[T] {
	result, err := r.Scan()
	if err != nil {
		panic(err)
	}
	return result
}
