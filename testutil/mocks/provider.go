// Package mocks 提供测试用的 Mock 实现
package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/BaSui01/creatorstudio/llm"
)

// =============================================================================
// 🤖 MockProvider - LLM Provider Mock
// =============================================================================

// MockProvider 是 llm.Provider 的 Mock 实现
type MockProvider struct {
	mu sync.RWMutex

	name         string
	response     string
	err          error
	usage        llm.ChatUsage
	delay        time.Duration
	health       *llm.HealthStatus
	healthErr    error
	completionFn func(ctx context.Context, req *llm.ChatRequest) (*llm.ChatResponse, error)

	// gate 非空时 Completion 会阻塞直到 gate 关闭，用于并发测试
	gate chan struct{}

	calls     []MockProviderCall
	callCount int
}

// MockProviderCall 记录一次调用
type MockProviderCall struct {
	Request *llm.ChatRequest
	Time    time.Time
}

// NewMockProvider 创建新的 MockProvider
func NewMockProvider() *MockProvider {
	return &MockProvider{
		name:   "mock",
		health: &llm.HealthStatus{Healthy: true},
		usage: llm.ChatUsage{
			PromptTokens:     10,
			CompletionTokens: 20,
			TotalTokens:      30,
		},
	}
}

// --- 链式配置方法 ---

// WithName 设置 Provider 名称
func (m *MockProvider) WithName(name string) *MockProvider {
	m.name = name
	return m
}

// WithResponse 设置固定响应文本
func (m *MockProvider) WithResponse(response string) *MockProvider {
	m.response = response
	return m
}

// WithError 设置返回错误
func (m *MockProvider) WithError(err error) *MockProvider {
	m.err = err
	return m
}

// WithTokenUsage 设置 token 使用量
func (m *MockProvider) WithTokenUsage(prompt, completion int) *MockProvider {
	m.usage = llm.ChatUsage{
		PromptTokens:     prompt,
		CompletionTokens: completion,
		TotalTokens:      prompt + completion,
	}
	return m
}

// WithDelay 设置响应延迟，延迟期间遵守 ctx 取消
func (m *MockProvider) WithDelay(delay time.Duration) *MockProvider {
	m.delay = delay
	return m
}

// WithGate 让 Completion 阻塞直到 gate 被关闭
func (m *MockProvider) WithGate(gate chan struct{}) *MockProvider {
	m.gate = gate
	return m
}

// WithHealth 设置健康检查结果
func (m *MockProvider) WithHealth(healthy bool, err error) *MockProvider {
	m.health = &llm.HealthStatus{Healthy: healthy, Latency: time.Millisecond}
	m.healthErr = err
	return m
}

// WithCompletionFunc 设置自定义 Completion 函数，优先于固定响应
func (m *MockProvider) WithCompletionFunc(fn func(ctx context.Context, req *llm.ChatRequest) (*llm.ChatResponse, error)) *MockProvider {
	m.completionFn = fn
	return m
}

// --- llm.Provider 接口实现 ---

// Name 返回 Provider 名称
func (m *MockProvider) Name() string {
	return m.name
}

// Completion 实现 llm.Provider.Completion
func (m *MockProvider) Completion(ctx context.Context, req *llm.ChatRequest) (*llm.ChatResponse, error) {
	m.mu.Lock()
	m.callCount++
	m.calls = append(m.calls, MockProviderCall{Request: req, Time: time.Now()})
	m.mu.Unlock()

	if m.gate != nil {
		select {
		case <-m.gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if m.delay > 0 {
		timer := time.NewTimer(m.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if m.completionFn != nil {
		return m.completionFn(ctx, req)
	}
	if m.err != nil {
		return nil, m.err
	}

	model := req.Model
	if model == "" {
		model = "mock-model"
	}
	return &llm.ChatResponse{
		ID:       "mock-response",
		Provider: m.name,
		Model:    model,
		Choices: []llm.ChatChoice{{
			Index:        0,
			FinishReason: "stop",
			Message: llm.Message{
				Role:    llm.RoleAssistant,
				Content: m.response,
			},
		}},
		Usage:     m.usage,
		CreatedAt: time.Now(),
	}, nil
}

// HealthCheck 实现 llm.Provider.HealthCheck
func (m *MockProvider) HealthCheck(ctx context.Context) (*llm.HealthStatus, error) {
	if m.healthErr != nil {
		return nil, m.healthErr
	}
	return m.health, nil
}

// --- 断言辅助方法 ---

// GetCalls 获取所有调用记录
func (m *MockProvider) GetCalls() []MockProviderCall {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]MockProviderCall, len(m.calls))
	copy(out, m.calls)
	return out
}

// GetCallCount 获取调用次数
func (m *MockProvider) GetCallCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.callCount
}

// GetLastCall 获取最后一次调用
func (m *MockProvider) GetLastCall() *MockProviderCall {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.calls) == 0 {
		return nil
	}
	call := m.calls[len(m.calls)-1]
	return &call
}

// Reset 重置调用记录
func (m *MockProvider) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
	m.callCount = 0
}

// --- 预设 Provider 工厂 ---

// NewSuccessProvider 创建总是返回给定文本的 Provider
func NewSuccessProvider(response string) *MockProvider {
	return NewMockProvider().WithResponse(response)
}

// NewErrorProvider 创建总是失败的 Provider
func NewErrorProvider(err error) *MockProvider {
	return NewMockProvider().WithError(err)
}
