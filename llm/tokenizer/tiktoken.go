package tokenizer

import (
	"fmt"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// TiktokenTokenizer 使用 tiktoken BPE 编码近似计数。
// Gemini 没有公开的本地分词器，o200k_base 与其词表规模接近，误差可接受。
type TiktokenTokenizer struct {
	encoding  string
	maxTokens int
	enc       *tiktoken.Tiktoken
	once      sync.Once
	initErr   error
}

// geminiModels 将模型前缀映射到上下文大小。
var geminiModels = map[string]int{
	"gemini-2.5-flash":     1048576,
	"gemini-2.5-pro":       1048576,
	"gemini-3-pro-preview": 1048576,
}

// NewTiktokenTokenizer 创建指定编码的分词器，编码数据在首次使用时加载。
func NewTiktokenTokenizer(encoding string, maxTokens int) *TiktokenTokenizer {
	if encoding == "" {
		encoding = "o200k_base"
	}
	if maxTokens <= 0 {
		maxTokens = 8192
	}
	return &TiktokenTokenizer{
		encoding:  encoding,
		maxTokens: maxTokens,
	}
}

// init lazily 初始化 tiktoken 编码(可能在第一次使用时下载数据).
func (t *TiktokenTokenizer) init() error {
	t.once.Do(func() {
		enc, err := tiktoken.GetEncoding(t.encoding)
		if err != nil {
			t.initErr = fmt.Errorf("init tiktoken encoding %s: %w", t.encoding, err)
			return
		}
		t.enc = enc
	})
	return t.initErr
}

func (t *TiktokenTokenizer) CountTokens(text string) (int, error) {
	if err := t.init(); err != nil {
		return 0, err
	}
	return len(t.enc.Encode(text, nil, nil)), nil
}

func (t *TiktokenTokenizer) MaxTokens() int {
	return t.maxTokens
}

func (t *TiktokenTokenizer) Name() string {
	return fmt.Sprintf("tiktoken[%s]", t.encoding)
}

// RegisterGeminiTokenizers 为已知 Gemini 模型注册 tiktoken 近似分词器。
func RegisterGeminiTokenizers() {
	for model, maxTokens := range geminiModels {
		RegisterTokenizer(model, NewTiktokenTokenizer("o200k_base", maxTokens))
	}
}
