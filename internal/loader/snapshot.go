package loader

import (
	"strings"
	"sync/atomic"
	"time"

	"country-map/internal/model"
	"country-map/internal/reconcile"
	"country-map/internal/revgeo"
)

// 文档注释：一次加载的只读结果
// 背景：HTTP 层只读取当前快照；下一次加载整体替换，不做原地修改。
// 约束：Index 在拓扑不可用时为 nil；Notice 非空表示已回退到默认列表。
type Snapshot struct {
	ID        string                `json:"id"`
	Source    string                `json:"source"`
	Notice    string                `json:"notice,omitempty"`
	LoadedAt  time.Time             `json:"loaded_at"`
	Countries []model.Country       `json:"countries"`
	Unmatched []reconcile.Unmatched `json:"-"`
	Anchors   map[string]string     `json:"-"`
	Index     *revgeo.Index         `json:"-"`
}

// Find：按代码查找国家（不区分大小写）
func (s *Snapshot) Find(code string) (model.Country, bool) {
	for _, c := range s.Countries {
		if strings.EqualFold(c.Code, strings.TrimSpace(code)) {
			return c, true
		}
	}
	return model.Country{}, false
}

// 文档注释：快照持有者
// 背景：通过 atomic.Pointer 提供无锁读与整体切换，保障重载期间读路径不阻塞。
// 约束：Store(nil) 会使后续读取返回 nil，调用方应保证非空。
type Holder struct{ p atomic.Pointer[Snapshot] }

// Current：读取当前快照，未设置时返回 nil
func (h *Holder) Current() *Snapshot { return h.p.Load() }

// Store：切换当前快照，对后续读取立即生效
func (h *Holder) Store(s *Snapshot) { h.p.Store(s) }
