// Hand-written mock of a non-generic view of store.Reader[int] (IntReader,
// declared below), following the shape mockgen output has: EXPECT(),
// .Return(...), .Times(...). It is not generated by any tool.
package graphcache_test

import (
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"

	ident "github.com/fantom-foundation/graphcache/ident"
	store "github.com/fantom-foundation/graphcache/store"
)

// IntReader is the narrowed, non-generic shape of store.Reader[int] that
// MockIntReader below implements.
type IntReader interface {
	Read(id ident.ID) (store.Node[int], error)
}

// MockIntReader is a mock of IntReader.
type MockIntReader struct {
	ctrl     *gomock.Controller
	recorder *MockIntReaderMockRecorder
}

// MockIntReaderMockRecorder is the mock recorder for MockIntReader.
type MockIntReaderMockRecorder struct {
	mock *MockIntReader
}

// NewMockIntReader creates a new mock instance.
func NewMockIntReader(ctrl *gomock.Controller) *MockIntReader {
	mock := &MockIntReader{ctrl: ctrl}
	mock.recorder = &MockIntReaderMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIntReader) EXPECT() *MockIntReaderMockRecorder {
	return m.recorder
}

// Read mocks base method.
func (m *MockIntReader) Read(id ident.ID) (store.Node[int], error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Read", id)
	ret0, _ := ret[0].(store.Node[int])
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Read indicates an expected call of Read.
func (mr *MockIntReaderMockRecorder) Read(id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Read", reflect.TypeOf((*MockIntReader)(nil).Read), id)
}
