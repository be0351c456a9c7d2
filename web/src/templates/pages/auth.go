package pages

import (
	"github.com/nfrund/hive/internal/view/dto/auth"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const inputClass = "w-full px-3 py-2 border border-gray-300 rounded-md focus:outline-none focus:ring-2 focus:ring-amber-400"

// Auth is the sign-in page. The login form accepts an email or a login id;
// the sign-up form sits in a collapsible section below it.
func Auth(data auth.LoginData) g.Node {
	return h.Div(h.Class("min-h-screen flex items-center justify-center px-4"),
		h.Div(h.Class("w-full max-w-md bg-white p-8 rounded-lg shadow-sm border border-gray-200"),
			h.H1(h.Class("text-2xl font-bold text-center text-amber-500 mb-2"), g.Text("🐝 HIVE")),
			h.H2(h.Class("text-center text-gray-700 mb-6"), g.Text("認証画面（ログイン・サインアップ）")),

			h.Form(h.Method("post"), h.Action("/auth/login"), h.Class("space-y-4"),
				field("identifier", "text", "メールアドレス またはユーザーID", data.Identifier, "username"),
				field("password", "password", "パスワード", "", "current-password"),
				h.Button(h.Type("submit"), h.Class("w-full py-2 rounded-md bg-amber-500 text-white font-medium hover:bg-amber-600"),
					g.Text("ログイン"),
				),
			),

			h.Details(h.Class("mt-6 border-t border-gray-200 pt-4"), g.If(data.ShowSignUp, g.Attr("open")),
				h.Summary(h.Class("cursor-pointer text-sm text-gray-600"), g.Text("アカウントをお持ちでない方はサインアップ")),
				h.Form(h.Method("post"), h.Action("/auth/signup"), h.Class("space-y-4 mt-4"),
					field("email", "email", "メールアドレス", data.SignUpEmail, "email"),
					field("password", "password", "パスワード", "", "new-password"),
					field("password_confirm", "password", "パスワード（確認）", "", "new-password"),
					h.Button(h.Type("submit"), h.Class("w-full py-2 rounded-md bg-gray-800 text-white font-medium hover:bg-gray-700"),
						g.Text("サインアップ"),
					),
				),
			),
		),
	)
}

func field(name, kind, placeholder, value, autocomplete string) g.Node {
	return h.Input(h.Type(kind), h.Name(name), h.Placeholder(placeholder), h.Required(),
		h.AutoComplete(autocomplete), h.Class(inputClass),
		g.If(value != "", h.Value(value)),
	)
}
