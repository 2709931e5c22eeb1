// Copyright (c) CreatorStudio Authors.
// Licensed under the MIT License.

/*
Package testutil 提供 CreatorStudio 测试的共享工具和辅助函数。

# 核心能力

  - 上下文辅助: TestContext / TestContextWithTimeout / CancelledContext
  - 缓存辅助: NewTestCache 启动 miniredis 并返回 cache.Manager
  - 断言工具: AssertErrorCode / AssertJSONEqual / AssertEventuallyTrue
  - 数据工具: MustJSON / MustParseJSON

# 子包

  - testutil/mocks: MockProvider，支持 Builder 模式、错误注入、延迟与阻塞闸门
  - testutil/fixtures: 创意、脚本、元数据样例与 ChatResponse 工厂

# 使用示例

	ctx := testutil.TestContext(t)
	provider := mocks.NewSuccessProvider(fixtures.JSONText(fixtures.SampleIdeas()))
	svc := studio.NewService(provider, studio.DefaultConfig(), nil)
	ideas, err := svc.GenerateVideoIdeas(ctx, "coffee")
*/
package testutil
