package form

import "strconv"

// Errors 字段级校验错误，key 为字段名
type Errors map[string]string

// GroupResolver 校验 group 引用时只需要存在性检查
type GroupResolver interface {
	ExistsByID(id uint64) (bool, error)
}

// PostForm 帖子表单。author 永远由调用方从登录态赋值，不走表单。
type PostForm struct {
	Group string `form:"group"`
	Text  string `form:"text"`
	// 已保存的图片路径，由 handler 处理完上传后填入
	Image string `form:"-"`
}

// Validate 校验表单并解析 group 引用。
// 返回的 errs 非空表示表单不合法；err 只代表存储层故障。
func (f *PostForm) Validate(groups GroupResolver) (groupID *uint64, errs Errors, err error) {
	errs = Errors{}

	if f.Text == "" {
		errs["text"] = "text is required"
	}

	if f.Group != "" {
		id, parseErr := strconv.ParseUint(f.Group, 10, 64)
		if parseErr != nil || id == 0 {
			errs["group"] = "unknown group"
		} else {
			ok, lookupErr := groups.ExistsByID(id)
			if lookupErr != nil {
				return nil, nil, lookupErr
			}
			if !ok {
				errs["group"] = "unknown group"
			} else {
				groupID = &id
			}
		}
	}

	if len(errs) > 0 {
		return nil, errs, nil
	}
	return groupID, nil, nil
}

// CommentForm 评论表单。author 和 post 由调用方赋值。
type CommentForm struct {
	Text string `form:"text"`
}

func (f *CommentForm) Validate() Errors {
	if f.Text == "" {
		return Errors{"text": "text is required"}
	}
	return nil
}
