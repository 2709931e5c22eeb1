// Copyright (c) CreatorStudio Authors.
// Licensed under the MIT License.

/*
Package dashboard 提供频道概览视图的演示数据。

数据全部为固定值：四张统计卡片、周一到周日的播放与订阅曲线、
最近建议、快捷操作与套餐用量。Views 卡片的值由周播放量合计
经 CompactNumber 计算得出。
*/
package dashboard
