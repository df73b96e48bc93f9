// Copyright (c) 2026 Nikki. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

// User-facing messages for the authentication domain.
//
// Sign-in failures deliberately share one message: whether the email is
// unknown or the password is wrong must not be distinguishable from the
// response.
const (
	msgDuplicateEmail     = "このメールアドレスは既に登録されています"
	msgInvalidCredentials = "メールアドレスまたはパスワードが間違っています"
	msgSignUpFailed       = "登録に失敗しました"
	msgSignInFailed       = "ログインに失敗しました"
	msgUserNotFound       = "ユーザーが見つかりません"
	msgUserFetchFailed    = "ユーザー情報の取得に失敗しました"
	msgResetLinkSent      = "パスワード再設定の案内を送信しました"
	msgResetTokenInvalid  = "再設定トークンが無効か、期限切れです"
	msgResetFailed        = "パスワードの再設定に失敗しました"
	msgPasswordUpdated    = "パスワードを更新しました"
)
