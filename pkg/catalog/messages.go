package catalog

// builtinMessages is the default message set. Turkish is the primary
// register; English covers channels that negotiated it.
var builtinMessages = map[string]map[string]string{
	KeySessionLocked: {
		"tr": "Güvenlik nedeniyle bu oturum geçici olarak kapatıldı. Lütfen daha sonra tekrar deneyin.",
		"en": "This session has been temporarily closed for security reasons. Please try again later.",
	},
	KeySessionLockedPII: {
		"tr": "Güvenliğiniz için bu görüşmeyi sonlandırmak zorundayız. Kişisel verilerinizin korunması amacıyla oturum kilitlendi.",
		"en": "For your security we have to end this conversation. The session was locked to protect personal data.",
	},
	KeySessionLockedEnum: {
		"tr": "Çok sayıda başarısız doğrulama denemesi nedeniyle oturum kilitlendi. Lütfen daha sonra tekrar deneyin.",
		"en": "The session was locked after too many failed verification attempts. Please try again later.",
	},
	KeySessionTerminated: {
		"tr": "Bu görüşme sonlandırıldı. Yardım için yeni bir görüşme başlatabilirsiniz.",
		"en": "This conversation has ended. Please start a new conversation for further help.",
	},
	KeyThrottled: {
		"tr": "Çok hızlı mesaj gönderiyorsunuz. Lütfen kısa bir süre bekleyip tekrar deneyin.",
		"en": "You are sending messages too quickly. Please wait a moment and try again.",
	},
	KeyContentSafety: {
		"tr": "Bu konuda yardımcı olamıyorum. Size başka nasıl yardımcı olabilirim?",
		"en": "I can't help with that. Is there something else I can help you with?",
	},
	KeyInjectionRefusal: {
		"tr": "Bu isteği işleme alamıyorum. Size ürün veya siparişlerinizle ilgili yardımcı olabilirim.",
		"en": "I can't process that request. I can help you with your products or orders.",
	},
	KeyVerificationAsk: {
		"tr": "Güvenliğiniz için kimliğinizi doğrulamam gerekiyor. Kayıtlı telefon numaranızın son 4 hanesini paylaşır mısınız?",
		"en": "For your security I need to verify your identity. Could you share the last 4 digits of your registered phone number?",
	},
	KeyVerificationAskName: {
		"tr": "Güvenliğiniz için kimliğinizi doğrulamam gerekiyor. Kayıtlı ad ve soyadınızı paylaşır mısınız?",
		"en": "For your security I need to verify your identity. Could you share the full name on the record?",
	},
	KeyVerificationFailed: {
		"tr": "Paylaştığınız bilgi kayıtlarımızla eşleşmedi. Lütfen kayıtlı telefonunuzun son 4 hanesini veya ad soyadınızı kontrol edip tekrar deneyin.",
		"en": "The information you shared does not match our records. Please check the last 4 digits of your registered phone or your full name and try again.",
	},
	KeyIdentityMismatch: {
		"tr": "Bu kayıt üzerinde işlem yapma yetkiniz bulunmuyor. Güvenlik nedeniyle talebinizi gerçekleştiremiyorum.",
		"en": "You are not authorized for this record. For security reasons I can't complete this request.",
	},
	KeyRecordNotFound: {
		"tr": "Aradığınız kayıt bulunamadı. Lütfen {field} bilgisini kontrol edip tekrar paylaşır mısınız?",
		"en": "The record was not found. Could you please check the {field} and share it again?",
	},
	KeyToolFailure: {
		"tr": "Şu anda sistemlerimizde geçici bir sorun yaşıyoruz. Lütfen birkaç dakika sonra tekrar deneyin.",
		"en": "We are having a temporary problem with our systems. Please try again in a few minutes.",
	},
	KeyTurnTimeout: {
		"tr": "İşleminiz beklenenden uzun sürdü. Lütfen tekrar deneyin.",
		"en": "Your request took longer than expected. Please try again.",
	},
	KeyFatalError: {
		"tr": "Beklenmeyen bir sorun oluştu. Lütfen daha sonra tekrar deneyin.",
		"en": "An unexpected problem occurred. Please try again later.",
	},
	KeySafeFallback: {
		"tr": "Size nasıl yardımcı olabilirim? Sipariş durumu, iade veya diğer konularda destek verebilirim.",
		"en": "How can I help you? I can assist with order status, returns, and other topics.",
	},
	KeyFirewallSoft: {
		"tr": "Bu bilgiyi paylaşamıyorum. Sipariş veya ürünlerinizle ilgili bir sorunuz varsa yardımcı olabilirim.",
		"en": "I can't share that information. If you have a question about your order or products, I can help.",
	},
	KeyNeedIdentifier: {
		"tr": "Size yardımcı olabilmem için {field} bilgisine ihtiyacım var. Paylaşır mısınız?",
		"en": "To help you I need the {field}. Could you share it?",
	},
	KeyPolicyRefund: {
		"tr": "İade ücretiniz, iade onaylandıktan sonra 3-10 iş günü içinde ödeme yönteminize aktarılır. İade talebini sipariş numaranızla başlatabilirim.",
		"en": "Your refund is transferred to your payment method within 3-10 business days after approval. I can start the refund with your order number.",
	},
	KeyPolicyReturn: {
		"tr": "Ürünlerinizi teslimattan itibaren 14 gün içinde iade edebilirsiniz. İade kodu oluşturmak için sipariş numaranızı paylaşmanız yeterli.",
		"en": "You can return items within 14 days of delivery. Share your order number and I can create a return code.",
	},
	KeyPolicyCancel: {
		"tr": "Kargoya verilmemiş siparişler iptal edilebilir. Sipariş numaranızı paylaşırsanız durumunu kontrol edip iptal talebinizi iletebilirim.",
		"en": "Orders not yet shipped can be cancelled. Share your order number and I can check its status and submit the cancellation.",
	},
}
