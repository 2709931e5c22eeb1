// Copyright (c) CreatorStudio Authors.
// Licensed under the MIT License.

// Package telemetry 封装 OpenTelemetry SDK 初始化，
// 为 HTTP 请求与每次生成调用提供 trace 导出。
// 禁用时使用 noop 实现，不连接任何外部服务。
package telemetry
